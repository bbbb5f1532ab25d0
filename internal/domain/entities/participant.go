package entities

import (
	"time"

	"github.com/google/uuid"
)

// Participant represents a user's roster entry for one event.
type Participant struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    string
	UbisoftID string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParticipantPatch carries the optional fields of updateParticipant.
type ParticipantPatch struct {
	Role   *string
	Status *string
}
