package database

import (
	"context"
	"fmt"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/infrastructure/database/sqlc_generated"
	"servdash/internal/ports/output"
)

var (
	_ output.ReminderRepository = (*ReminderRepository)(nil)
	_ output.ServerRepository   = (*ServerRepository)(nil)
	_ output.ProfileRepository  = (*ProfileRepository)(nil)
)

type ReminderRepository struct {
	q *sqlc_generated.Queries
}

func NewReminderRepository(q *sqlc_generated.Queries) *ReminderRepository {
	return &ReminderRepository{q: q}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *entities.Reminder) error {
	id, err := r.q.CreateScheduledReminder(ctx, sqlc_generated.CreateScheduledReminderParams{
		EventKind:  string(reminder.EventKind),
		EventID:    uuidToPg(reminder.EventID),
		RemindAt:   timeToTimestamptz(reminder.RemindAt),
		RemindKind: string(reminder.RemindKind),
	})
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("create reminder: %w", err)
	}
	reminder.ID = id
	return nil
}

func (r *ReminderRepository) ListFrom(ctx context.Context, from time.Time) ([]entities.Reminder, error) {
	rows, err := r.q.ListScheduledRemindersFrom(ctx, timeToTimestamptz(from))
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	out := make([]entities.Reminder, len(rows))
	for i := range rows {
		out[i] = reminderToDomain(rows[i])
	}
	return out, nil
}

func (r *ReminderRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.q.DeleteScheduledReminder(ctx, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if n == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

type ServerRepository struct {
	q *sqlc_generated.Queries
}

func NewServerRepository(q *sqlc_generated.Queries) *ServerRepository {
	return &ServerRepository{q: q}
}

func (r *ServerRepository) FindByDiscordID(ctx context.Context, discordID string) (*entities.Server, error) {
	row, err := r.q.GetServerByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("get server: %w", notFound(err, domain.ErrServerNotFound))
	}
	s := serverToDomain(row)
	return &s, nil
}

type ProfileRepository struct {
	q *sqlc_generated.Queries
}

func NewProfileRepository(q *sqlc_generated.Queries) *ProfileRepository {
	return &ProfileRepository{q: q}
}

func (r *ProfileRepository) FindByDiscordID(ctx context.Context, discordID string) (*entities.UbisoftProfile, error) {
	row, err := r.q.GetUserProfile(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", notFound(err, domain.ErrProfileNotFound))
	}
	p := profileToDomain(row)
	return &p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *entities.UbisoftProfile) error {
	row, err := r.q.UpsertUserProfile(ctx, sqlc_generated.UpsertUserProfileParams{
		DiscordID: profile.DiscordID,
		UbisoftID: profile.UbisoftID,
	})
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	profile.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	profile.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}
