package output

import (
	"context"

	"servdash/internal/domain/entities"

	"github.com/google/uuid"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	// CreateConfirmed inserts participant only if the event holds fewer than
	// capacity Confirmed participants, atomically with the count. It returns
	// domain.ErrCapacityExceeded otherwise. The capacity stored on the event
	// applies when it is lower than the one the caller saw.
	CreateConfirmed(ctx context.Context, participant *entities.Participant, capacity int) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]entities.Participant, error)
	FindByEventIDAndStatus(ctx context.Context, eventID uuid.UUID, status string) ([]entities.Participant, error)
	// CreateUnique inserts an activity signup unless the event already holds
	// one with the same user id, or the same Ubisoft id when it is not empty
	// (domain.ErrParticipantExists). Confirmed signups follow the
	// CreateConfirmed capacity rule. Both checks share one event lock.
	CreateUnique(ctx context.Context, participant *entities.Participant, capacity int) error
	Update(ctx context.Context, participant *entities.Participant) error
	// UpdateConfirmed persists a participant that moves to Confirmed, with the
	// same capacity guarantee as CreateConfirmed.
	UpdateConfirmed(ctx context.Context, participant *entities.Participant, capacity int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
