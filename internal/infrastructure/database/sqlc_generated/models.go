package sqlc_generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Event struct {
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
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Participant struct {
	ID        pgtype.UUID
	EventID   pgtype.UUID
	UserID    string
	UbisoftID string
	Role      string
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type ScheduledReminder struct {
	ID         int64
	EventKind  string
	EventID    pgtype.UUID
	RemindAt   pgtype.Timestamptz
	RemindKind string
	CreatedAt  pgtype.Timestamptz
}

type Server struct {
	ID         int64
	Name       string
	DiscordID  string
	Td2Enabled bool
	CreatedAt  pgtype.Timestamptz
}

type UserProfile struct {
	DiscordID string
	UbisoftID string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
