package input

import (
	"context"

	"servdash/internal/domain/entities"

	"github.com/google/uuid"
)

type ReminderUseCase interface {
	ScheduleReminders(ctx context.Context, eventType string, eventID uuid.UUID, remindKinds []string) ([]entities.Reminder, error)
	ListUpcomingReminders(ctx context.Context) ([]entities.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, discordID string) (*entities.UbisoftProfile, error)
	UpsertProfile(ctx context.Context, discordID, ubisoftID string) (*entities.UbisoftProfile, error)
}
