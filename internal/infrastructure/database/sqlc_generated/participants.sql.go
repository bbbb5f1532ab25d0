package sqlc_generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countOtherParticipantsByStatus = `-- name: CountOtherParticipantsByStatus :one
SELECT COUNT(*) FROM participants
WHERE event_id = $1 AND status = $2 AND id <> $3
`

type CountOtherParticipantsByStatusParams struct {
	EventID pgtype.UUID
	Status  string
	ID      pgtype.UUID
}

func (q *Queries) CountOtherParticipantsByStatus(ctx context.Context, arg CountOtherParticipantsByStatusParams) (int64, error) {
	row := q.db.QueryRow(ctx, countOtherParticipantsByStatus, arg.EventID, arg.Status, arg.ID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countParticipantsByEventIDAndStatus = `-- name: CountParticipantsByEventIDAndStatus :one
SELECT COUNT(*) FROM participants
WHERE event_id = $1 AND status = $2
`

type CountParticipantsByEventIDAndStatusParams struct {
	EventID pgtype.UUID
	Status  string
}

func (q *Queries) CountParticipantsByEventIDAndStatus(ctx context.Context, arg CountParticipantsByEventIDAndStatusParams) (int64, error) {
	row := q.db.QueryRow(ctx, countParticipantsByEventIDAndStatus, arg.EventID, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createParticipant = `-- name: CreateParticipant :one
INSERT INTO participants (id, event_id, user_id, ubisoft_id, role, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at, updated_at
`

type CreateParticipantParams struct {
	ID        pgtype.UUID
	EventID   pgtype.UUID
	UserID    string
	UbisoftID string
	Role      string
	Status    string
}

type CreateParticipantRow struct {
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateParticipant(ctx context.Context, arg CreateParticipantParams) (CreateParticipantRow, error) {
	row := q.db.QueryRow(ctx, createParticipant,
		arg.ID,
		arg.EventID,
		arg.UserID,
		arg.UbisoftID,
		arg.Role,
		arg.Status,
	)
	var i CreateParticipantRow
	err := row.Scan(&i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteParticipant = `-- name: DeleteParticipant :execrows
DELETE FROM participants
WHERE id = $1
`

func (q *Queries) DeleteParticipant(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteParticipant, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findParticipantSignup = `-- name: FindParticipantSignup :one
SELECT id, event_id, user_id, ubisoft_id, role, status, created_at, updated_at FROM participants
WHERE event_id = $1
  AND (user_id = $2
       OR ($3::text <> '' AND ubisoft_id = $3::text))
ORDER BY created_at
LIMIT 1
`

type FindParticipantSignupParams struct {
	EventID   pgtype.UUID
	UserID    string
	UbisoftID string
}

func (q *Queries) FindParticipantSignup(ctx context.Context, arg FindParticipantSignupParams) (Participant, error) {
	row := q.db.QueryRow(ctx, findParticipantSignup, arg.EventID, arg.UserID, arg.UbisoftID)
	var i Participant
	err := scanParticipant(row, &i)
	return i, err
}

const getParticipantByID = `-- name: GetParticipantByID :one
SELECT id, event_id, user_id, ubisoft_id, role, status, created_at, updated_at FROM participants
WHERE id = $1
`

func (q *Queries) GetParticipantByID(ctx context.Context, id pgtype.UUID) (Participant, error) {
	row := q.db.QueryRow(ctx, getParticipantByID, id)
	var i Participant
	err := scanParticipant(row, &i)
	return i, err
}

const getParticipantsByEventID = `-- name: GetParticipantsByEventID :many
SELECT id, event_id, user_id, ubisoft_id, role, status, created_at, updated_at FROM participants
WHERE event_id = $1
ORDER BY created_at
`

func (q *Queries) GetParticipantsByEventID(ctx context.Context, eventID pgtype.UUID) ([]Participant, error) {
	return q.queryParticipants(ctx, getParticipantsByEventID, eventID)
}

const getParticipantsByEventIDAndStatus = `-- name: GetParticipantsByEventIDAndStatus :many
SELECT id, event_id, user_id, ubisoft_id, role, status, created_at, updated_at FROM participants
WHERE event_id = $1 AND status = $2
ORDER BY created_at
`

type GetParticipantsByEventIDAndStatusParams struct {
	EventID pgtype.UUID
	Status  string
}

func (q *Queries) GetParticipantsByEventIDAndStatus(ctx context.Context, arg GetParticipantsByEventIDAndStatusParams) ([]Participant, error) {
	return q.queryParticipants(ctx, getParticipantsByEventIDAndStatus, arg.EventID, arg.Status)
}

const getParticipantsByEventIDs = `-- name: GetParticipantsByEventIDs :many
SELECT id, event_id, user_id, ubisoft_id, role, status, created_at, updated_at FROM participants
WHERE event_id = ANY($1::uuid[])
ORDER BY created_at
`

func (q *Queries) GetParticipantsByEventIDs(ctx context.Context, eventIds []pgtype.UUID) ([]Participant, error) {
	return q.queryParticipants(ctx, getParticipantsByEventIDs, eventIds)
}

const updateParticipant = `-- name: UpdateParticipant :execrows
UPDATE participants
SET role = $2, status = $3, updated_at = NOW()
WHERE id = $1
`

type UpdateParticipantParams struct {
	ID     pgtype.UUID
	Role   string
	Status string
}

func (q *Queries) UpdateParticipant(ctx context.Context, arg UpdateParticipantParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateParticipant, arg.ID, arg.Role, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (q *Queries) queryParticipants(ctx context.Context, query string, args ...interface{}) ([]Participant, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Participant
	for rows.Next() {
		var i Participant
		if err := scanParticipant(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanParticipant(row rowScanner, i *Participant) error {
	return row.Scan(
		&i.ID,
		&i.EventID,
		&i.UserID,
		&i.UbisoftID,
		&i.Role,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
