package entities

import (
	"time"

	"servdash/internal/domain"

	"github.com/google/uuid"
)

// Event is a schedulable TD2 event. Kind selects which of the optional
// fields are meaningful and how the Confirmed capacity is computed.
type Event struct {
	ID           uuid.UUID
	Kind         domain.EventKind
	ServerID     int64
	CustomID     string // activity/incursion interaction id
	CreatorID    string
	RaidLeadID   string // raid only: "business" creator of the raid
	Name         string
	Zone         string
	Type         string // activity only
	Description  string
	MaxPlayers   int // activity only
	LaunchDate   time.Time
	ThreadID     string
	MessageID    string
	IsNotified   bool
	IsActive     bool
	Participants []Participant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Capacity returns the maximum number of Confirmed participants.
func (e *Event) Capacity() int {
	switch e.Kind {
	case domain.KindRaid:
		return domain.RaidCapacity
	case domain.KindIncursion:
		return domain.IncursionCapacity
	default:
		return e.MaxPlayers
	}
}

// DueForReminder reports whether the poller should notify this event at now.
func (e *Event) DueForReminder(now time.Time, window time.Duration) bool {
	if e.IsNotified || e.LaunchDate.IsZero() {
		return false
	}
	return !e.LaunchDate.Before(now) && !e.LaunchDate.After(now.Add(window))
}

// EventFilter narrows event listings. Zero values are ignored.
type EventFilter struct {
	Kind      domain.EventKind
	ServerID  int64
	DiscordID string
}

// EventPatch carries the optional fields of a partial event update.
type EventPatch struct {
	LaunchDate  *time.Time
	Name        *string
	Zone        *string
	Type        *string
	Description *string
	MaxPlayers  *int
	ThreadID    *string
	MessageID   *string
	IsActive    *bool
}

// Apply copies every set field onto e.
func (p EventPatch) Apply(e *Event) {
	if p.LaunchDate != nil {
		e.LaunchDate = *p.LaunchDate
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Zone != nil {
		e.Zone = *p.Zone
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.MaxPlayers != nil {
		e.MaxPlayers = *p.MaxPlayers
	}
	if p.ThreadID != nil {
		e.ThreadID = *p.ThreadID
	}
	if p.MessageID != nil {
		e.MessageID = *p.MessageID
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
}
