package sqlc_generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createEvent = `-- name: CreateEvent :one
INSERT INTO events (
    id, kind, server_id, custom_id, creator_id, raid_lead_id, name, zone, type,
    description, max_players, launch_date, thread_id, message_id, is_notified, is_active
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)
RETURNING created_at, updated_at
`

type CreateEventParams struct {
	ID          pgtype.UUID
	Kind        string
	ServerID    int64
	CustomID    string
	CreatorID   string
	RaidLeadID  string
	Name        string
	Zone        string
	Type        string
	Description string
	MaxPlayers  int32
	LaunchDate  pgtype.Timestamptz
	ThreadID    string
	MessageID   string
	IsNotified  bool
	IsActive    bool
}

type CreateEventRow struct {
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (CreateEventRow, error) {
	row := q.db.QueryRow(ctx, createEvent,
		arg.ID,
		arg.Kind,
		arg.ServerID,
		arg.CustomID,
		arg.CreatorID,
		arg.RaidLeadID,
		arg.Name,
		arg.Zone,
		arg.Type,
		arg.Description,
		arg.MaxPlayers,
		arg.LaunchDate,
		arg.ThreadID,
		arg.MessageID,
		arg.IsNotified,
		arg.IsActive,
	)
	var i CreateEventRow
	err := row.Scan(&i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteEvent = `-- name: DeleteEvent :execrows
DELETE FROM events
WHERE id = $1
`

func (q *Queries) DeleteEvent(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteEvent, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findDueEvents = `-- name: FindDueEvents :many
SELECT id, kind, server_id, custom_id, creator_id, raid_lead_id, name, zone, type, description, max_players, launch_date, thread_id, message_id, is_notified, is_active, created_at, updated_at FROM events
WHERE kind = $1
  AND NOT is_notified
  AND launch_date >= $2::timestamptz
  AND launch_date <= $3::timestamptz
ORDER BY launch_date
`

type FindDueEventsParams struct {
	Kind        string
	WindowStart pgtype.Timestamptz
	WindowEnd   pgtype.Timestamptz
}

func (q *Queries) FindDueEvents(ctx context.Context, arg FindDueEventsParams) ([]Event, error) {
	rows, err := q.db.Query(ctx, findDueEvents, arg.Kind, arg.WindowStart, arg.WindowEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Event
	for rows.Next() {
		var i Event
		if err := scanEvent(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getEventByID = `-- name: GetEventByID :one
SELECT id, kind, server_id, custom_id, creator_id, raid_lead_id, name, zone, type, description, max_players, launch_date, thread_id, message_id, is_notified, is_active, created_at, updated_at FROM events
WHERE id = $1
`

func (q *Queries) GetEventByID(ctx context.Context, id pgtype.UUID) (Event, error) {
	row := q.db.QueryRow(ctx, getEventByID, id)
	var i Event
	err := scanEvent(row, &i)
	return i, err
}

const getEventByMessageID = `-- name: GetEventByMessageID :one
SELECT id, kind, server_id, custom_id, creator_id, raid_lead_id, name, zone, type, description, max_players, launch_date, thread_id, message_id, is_notified, is_active, created_at, updated_at FROM events
WHERE kind = $1 AND message_id = $2
LIMIT 1
`

type GetEventByMessageIDParams struct {
	Kind      string
	MessageID string
}

func (q *Queries) GetEventByMessageID(ctx context.Context, arg GetEventByMessageIDParams) (Event, error) {
	row := q.db.QueryRow(ctx, getEventByMessageID, arg.Kind, arg.MessageID)
	var i Event
	err := scanEvent(row, &i)
	return i, err
}

const listEvents = `-- name: ListEvents :many
SELECT e.id, e.kind, e.server_id, e.custom_id, e.creator_id, e.raid_lead_id, e.name, e.zone, e.type, e.description, e.max_players, e.launch_date, e.thread_id, e.message_id, e.is_notified, e.is_active, e.created_at, e.updated_at FROM events e
JOIN servers s ON s.id = e.server_id
WHERE ($1::text IS NULL OR e.kind = $1)
  AND ($2::bigint IS NULL OR e.server_id = $2)
  AND ($3::text IS NULL OR s.discord_id = $3)
ORDER BY e.launch_date
`

type ListEventsParams struct {
	Kind      pgtype.Text
	ServerID  pgtype.Int8
	DiscordID pgtype.Text
}

func (q *Queries) ListEvents(ctx context.Context, arg ListEventsParams) ([]Event, error) {
	rows, err := q.db.Query(ctx, listEvents, arg.Kind, arg.ServerID, arg.DiscordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Event
	for rows.Next() {
		var i Event
		if err := scanEvent(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const lockEventForUpdate = `-- name: LockEventForUpdate :one
SELECT kind, max_players FROM events
WHERE id = $1
FOR UPDATE
`

type LockEventForUpdateRow struct {
	Kind       string
	MaxPlayers int32
}

func (q *Queries) LockEventForUpdate(ctx context.Context, id pgtype.UUID) (LockEventForUpdateRow, error) {
	row := q.db.QueryRow(ctx, lockEventForUpdate, id)
	var i LockEventForUpdateRow
	err := row.Scan(&i.Kind, &i.MaxPlayers)
	return i, err
}

const markEventNotified = `-- name: MarkEventNotified :execrows
UPDATE events
SET is_notified = TRUE, updated_at = NOW()
WHERE id = $1 AND NOT is_notified
`

func (q *Queries) MarkEventNotified(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, markEventNotified, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateEvent = `-- name: UpdateEvent :execrows
UPDATE events
SET name = $2,
    zone = $3,
    type = $4,
    description = $5,
    max_players = $6,
    launch_date = $7,
    thread_id = $8,
    message_id = $9,
    is_active = $10,
    updated_at = NOW()
WHERE id = $1
`

type UpdateEventParams struct {
	ID          pgtype.UUID
	Name        string
	Zone        string
	Type        string
	Description string
	MaxPlayers  int32
	LaunchDate  pgtype.Timestamptz
	ThreadID    string
	MessageID   string
	IsActive    bool
}

func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateEvent,
		arg.ID,
		arg.Name,
		arg.Zone,
		arg.Type,
		arg.Description,
		arg.MaxPlayers,
		arg.LaunchDate,
		arg.ThreadID,
		arg.MessageID,
		arg.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner, i *Event) error {
	return row.Scan(
		&i.ID,
		&i.Kind,
		&i.ServerID,
		&i.CustomID,
		&i.CreatorID,
		&i.RaidLeadID,
		&i.Name,
		&i.Zone,
		&i.Type,
		&i.Description,
		&i.MaxPlayers,
		&i.LaunchDate,
		&i.ThreadID,
		&i.MessageID,
		&i.IsNotified,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
