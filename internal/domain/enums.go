package domain

import "time"

// EventKind tags the three schedulable event variants.
type EventKind string

const (
	KindRaid      EventKind = "raid"
	KindActivity  EventKind = "activity"
	KindIncursion EventKind = "incursion"
)

// EventKinds lists every kind, in the order the reminder scheduler scans them.
var EventKinds = []EventKind{KindRaid, KindIncursion, KindActivity}

// Fixed Confirmed capacities. Activities carry their own maxPlayers, up to
// MaxActivityPlayers.
const (
	RaidCapacity       = 8
	IncursionCapacity  = 4
	MaxActivityPlayers = 100
)

func (k EventKind) Valid() bool {
	switch k {
	case KindRaid, KindActivity, KindIncursion:
		return true
	}
	return false
}

// ParseEventKind accepts the API spellings, including the legacy "activité".
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "raid":
		return KindRaid, nil
	case "activity", "activité":
		return KindActivity, nil
	case "incursion":
		return KindIncursion, nil
	}
	return "", Invalid("eventType", "type d'événement invalide")
}

// RolesConstrained reports whether participant roles must be DPS/Heal/Tank.
func (k EventKind) RolesConstrained() bool {
	return k == KindRaid || k == KindIncursion
}

// Participant statuses.
const (
	StatusConfirmed   = "Confirmed"
	StatusUnavailable = "Unavailable"
	StatusLate        = "Late"
	StatusSubstitute  = "Substitute"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusUnavailable, StatusLate, StatusSubstitute:
		return true
	}
	return false
}

// Participant roles for raids and incursions.
const (
	RoleDPS  = "DPS"
	RoleHeal = "Heal"
	RoleTank = "Tank"
)

func ValidRole(s string) bool {
	return s == RoleDPS || s == RoleHeal || s == RoleTank
}

// ActivityTypes are the accepted activity categories.
var ActivityTypes = []string{
	"Open-World",
	"Primes",
	"Kenly College",
	"Descente",
	"Compte a Rebours",
	"Mission Légendaire",
}

func ValidActivityType(s string) bool {
	for _, t := range ActivityTypes {
		if t == s {
			return true
		}
	}
	return false
}

// RemindKind is an offset before launch at which a reminder record fires.
type RemindKind string

const (
	Remind15Min RemindKind = "15min"
	Remind5Min  RemindKind = "5min"
)

// Offset returns how long before launch the reminder fires.
func (k RemindKind) Offset() (time.Duration, bool) {
	switch k {
	case Remind15Min:
		return 15 * time.Minute, true
	case Remind5Min:
		return 5 * time.Minute, true
	}
	return 0, false
}
