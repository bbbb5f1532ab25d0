package database

import (
	"context"
	"errors"
	"fmt"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/infrastructure/database/sqlc_generated"
	"servdash/internal/ports/output"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository using sqlc + pgx.
// Capacity-checked writes run in a transaction holding the event row lock,
// so concurrent signups on one event are serialized.
type ParticipantRepository struct {
	pool *pgxpool.Pool
	q    *sqlc_generated.Queries
}

func NewParticipantRepository(pool *pgxpool.Pool, q *sqlc_generated.Queries) *ParticipantRepository {
	return &ParticipantRepository{pool: pool, q: q}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	return r.insert(ctx, r.q, participant)
}

func (r *ParticipantRepository) insert(ctx context.Context, q *sqlc_generated.Queries, participant *entities.Participant) error {
	row, err := q.CreateParticipant(ctx, sqlc_generated.CreateParticipantParams{
		ID:        uuidToPg(participant.ID),
		EventID:   uuidToPg(participant.EventID),
		UserID:    participant.UserID,
		UbisoftID: participant.UbisoftID,
		Role:      participant.Role,
		Status:    participant.Status,
	})
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("create participant: %w", err)
	}
	participant.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	participant.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *ParticipantRepository) CreateConfirmed(ctx context.Context, participant *entities.Participant, capacity int) error {
	return withEventLock(ctx, r.pool, r.q, participant.EventID, func(q *sqlc_generated.Queries, stored int) error {
		count, err := countConfirmed(ctx, q, participant.EventID)
		if err != nil {
			return err
		}
		if count >= min(capacity, stored) {
			return domain.ErrCapacityExceeded
		}
		return r.insert(ctx, q, participant)
	})
}

func (r *ParticipantRepository) CreateUnique(ctx context.Context, participant *entities.Participant, capacity int) error {
	return withEventLock(ctx, r.pool, r.q, participant.EventID, func(q *sqlc_generated.Queries, stored int) error {
		_, err := q.FindParticipantSignup(ctx, sqlc_generated.FindParticipantSignupParams{
			EventID:   uuidToPg(participant.EventID),
			UserID:    participant.UserID,
			UbisoftID: participant.UbisoftID,
		})
		switch {
		case err == nil:
			return domain.ErrParticipantExists
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("find signup: %w", err)
		}
		if participant.Status == domain.StatusConfirmed {
			count, err := countConfirmed(ctx, q, participant.EventID)
			if err != nil {
				return err
			}
			if count >= min(capacity, stored) {
				return domain.ErrCapacityExceeded
			}
		}
		return r.insert(ctx, q, participant)
	})
}

func (r *ParticipantRepository) UpdateConfirmed(ctx context.Context, participant *entities.Participant, capacity int) error {
	return withEventLock(ctx, r.pool, r.q, participant.EventID, func(q *sqlc_generated.Queries, stored int) error {
		count, err := q.CountOtherParticipantsByStatus(ctx, sqlc_generated.CountOtherParticipantsByStatusParams{
			EventID: uuidToPg(participant.EventID),
			Status:  domain.StatusConfirmed,
			ID:      uuidToPg(participant.ID),
		})
		if err != nil {
			return fmt.Errorf("count confirmed: %w", err)
		}
		if int(count) >= min(capacity, stored) {
			return domain.ErrCapacityExceeded
		}
		return r.update(ctx, q, participant)
	})
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error) {
	row, err := r.q.GetParticipantByID(ctx, uuidToPg(id))
	if err != nil {
		return nil, fmt.Errorf("get participant by id: %w", notFound(err, domain.ErrParticipantNotFound))
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]entities.Participant, error) {
	rows, err := r.q.GetParticipantsByEventID(ctx, uuidToPg(eventID))
	if err != nil {
		return nil, fmt.Errorf("get participants by event id: %w", err)
	}
	return participantsToDomain(rows), nil
}

func (r *ParticipantRepository) FindByEventIDAndStatus(ctx context.Context, eventID uuid.UUID, status string) ([]entities.Participant, error) {
	rows, err := r.q.GetParticipantsByEventIDAndStatus(ctx, sqlc_generated.GetParticipantsByEventIDAndStatusParams{
		EventID: uuidToPg(eventID),
		Status:  status,
	})
	if err != nil {
		return nil, fmt.Errorf("get participants by event id and status: %w", err)
	}
	return participantsToDomain(rows), nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant *entities.Participant) error {
	return r.update(ctx, r.q, participant)
}

func (r *ParticipantRepository) update(ctx context.Context, q *sqlc_generated.Queries, participant *entities.Participant) error {
	n, err := q.UpdateParticipant(ctx, sqlc_generated.UpdateParticipantParams{
		ID:     uuidToPg(participant.ID),
		Role:   participant.Role,
		Status: participant.Status,
	})
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	if n == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.q.DeleteParticipant(ctx, uuidToPg(id))
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if n == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func participantsToDomain(rows []sqlc_generated.Participant) []entities.Participant {
	out := make([]entities.Participant, len(rows))
	for i := range rows {
		out[i] = participantToDomain(rows[i])
	}
	return out
}
