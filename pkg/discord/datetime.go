package discord

import (
	"time"

	"servdash/pkg/tz"
)

// FormatEventDateTime renders t in Paris time the way the bot displays it.
func FormatEventDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Paris).Format("02/01/2006 à 15:04")
}

// FormatLaunchDate renders t as RFC 3339 in Paris time.
func FormatLaunchDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Paris).Format(time.RFC3339)
}
