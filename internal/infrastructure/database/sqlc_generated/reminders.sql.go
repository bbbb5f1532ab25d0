package sqlc_generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createScheduledReminder = `-- name: CreateScheduledReminder :one
INSERT INTO scheduled_reminders (event_kind, event_id, remind_at, remind_kind)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateScheduledReminderParams struct {
	EventKind  string
	EventID    pgtype.UUID
	RemindAt   pgtype.Timestamptz
	RemindKind string
}

func (q *Queries) CreateScheduledReminder(ctx context.Context, arg CreateScheduledReminderParams) (int64, error) {
	row := q.db.QueryRow(ctx, createScheduledReminder,
		arg.EventKind,
		arg.EventID,
		arg.RemindAt,
		arg.RemindKind,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const deleteScheduledReminder = `-- name: DeleteScheduledReminder :execrows
DELETE FROM scheduled_reminders
WHERE id = $1
`

func (q *Queries) DeleteScheduledReminder(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteScheduledReminder, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listScheduledRemindersFrom = `-- name: ListScheduledRemindersFrom :many
SELECT id, event_kind, event_id, remind_at, remind_kind, created_at FROM scheduled_reminders
WHERE remind_at >= $1
ORDER BY remind_at
`

func (q *Queries) ListScheduledRemindersFrom(ctx context.Context, remindAt pgtype.Timestamptz) ([]ScheduledReminder, error) {
	rows, err := q.db.Query(ctx, listScheduledRemindersFrom, remindAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScheduledReminder
	for rows.Next() {
		var i ScheduledReminder
		if err := rows.Scan(
			&i.ID,
			&i.EventKind,
			&i.EventID,
			&i.RemindAt,
			&i.RemindKind,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
