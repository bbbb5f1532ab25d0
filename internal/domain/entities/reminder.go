package entities

import (
	"time"

	"servdash/internal/domain"

	"github.com/google/uuid"
)

// Reminder is an eagerly computed reminder record consumed by the bot.
type Reminder struct {
	ID         int64
	EventKind  domain.EventKind
	EventID    uuid.UUID
	RemindAt   time.Time
	RemindKind domain.RemindKind
}

// Server is the owning Discord guild of an event.
type Server struct {
	ID         int64
	Name       string
	DiscordID  string
	TD2Enabled bool
}

// UbisoftProfile links a Discord user to their Ubisoft name.
type UbisoftProfile struct {
	DiscordID string
	UbisoftID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
