package input

import (
	"context"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"

	"github.com/google/uuid"
)

// Signup is the payload of an addParticipant request. An empty Status means
// Confirmed.
type Signup struct {
	UserID    string
	UbisoftID string
	Role      string
	Status    string
}

type ParticipantUseCase interface {
	ListParticipants(ctx context.Context, kind domain.EventKind, eventID uuid.UUID) ([]entities.Participant, error)
	AddParticipant(ctx context.Context, kind domain.EventKind, eventID uuid.UUID, signup Signup) (*entities.Participant, error)
	UpdateParticipant(ctx context.Context, kind domain.EventKind, participantID uuid.UUID, patch entities.ParticipantPatch) (*entities.Participant, error)
	RemoveParticipant(ctx context.Context, kind domain.EventKind, participantID uuid.UUID) error
}
