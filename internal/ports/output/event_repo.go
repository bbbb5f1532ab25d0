package output

import (
	"context"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	FindByMessageID(ctx context.Context, kind domain.EventKind, messageID string) (*entities.Event, error)
	List(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
	// FindDueForReminder returns not-yet-notified events of kind whose launch
	// date falls in [from, to].
	FindDueForReminder(ctx context.Context, kind domain.EventKind, from, to time.Time) ([]entities.Event, error)
	// Update persists event while holding its row lock. It fails with
	// domain.ErrCannotReduceSlots when the event already holds more Confirmed
	// participants than event.Capacity().
	Update(ctx context.Context, event *entities.Event) error
	// MarkNotified flips is_notified to true. It reports false when the flag
	// was already set.
	MarkNotified(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
