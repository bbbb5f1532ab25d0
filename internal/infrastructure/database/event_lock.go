package database

import (
	"context"
	"fmt"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/infrastructure/database/sqlc_generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// withEventLock runs fn in a transaction that holds the event row FOR UPDATE.
// fn receives the transaction's queries and the capacity stored on the
// locked row. Every write that depends on the Confirmed count of an event
// goes through here, so those writes are serialized per event.
func withEventLock(ctx context.Context, pool *pgxpool.Pool, q *sqlc_generated.Queries, eventID uuid.UUID, fn func(q *sqlc_generated.Queries, stored int) error) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	qtx := q.WithTx(tx)
	locked, err := qtx.LockEventForUpdate(ctx, uuidToPg(eventID))
	if err != nil {
		return fmt.Errorf("lock event: %w", notFound(err, domain.ErrEventNotFound))
	}
	event := entities.Event{Kind: domain.EventKind(locked.Kind), MaxPlayers: int(locked.MaxPlayers)}
	if err := fn(qtx, event.Capacity()); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func countConfirmed(ctx context.Context, q *sqlc_generated.Queries, eventID uuid.UUID) (int, error) {
	count, err := q.CountParticipantsByEventIDAndStatus(ctx, sqlc_generated.CountParticipantsByEventIDAndStatusParams{
		EventID: uuidToPg(eventID),
		Status:  domain.StatusConfirmed,
	})
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}
	return int(count), nil
}
