package input

import (
	"context"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"

	"github.com/google/uuid"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, guildID string, event *entities.Event) error
	GetEvent(ctx context.Context, kind domain.EventKind, id uuid.UUID) (*entities.Event, error)
	GetEventByMessageID(ctx context.Context, kind domain.EventKind, messageID string) (*entities.Event, error)
	ListEvents(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, kind domain.EventKind, id uuid.UUID, patch entities.EventPatch) (*entities.Event, error)
	DeleteEvent(ctx context.Context, kind domain.EventKind, id uuid.UUID) error
	DeleteEventByMessageID(ctx context.Context, kind domain.EventKind, messageID string) error
}
