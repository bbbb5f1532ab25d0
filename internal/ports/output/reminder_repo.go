package output

import (
	"context"
	"time"

	"servdash/internal/domain/entities"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	ListFrom(ctx context.Context, from time.Time) ([]entities.Reminder, error)
	Delete(ctx context.Context, id int64) error
}

type ServerRepository interface {
	FindByDiscordID(ctx context.Context, discordID string) (*entities.Server, error)
}

type ProfileRepository interface {
	FindByDiscordID(ctx context.Context, discordID string) (*entities.UbisoftProfile, error)
	Upsert(ctx context.Context, profile *entities.UbisoftProfile) error
}
