package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEventNotFound       = errors.New("événement non trouvé")
	ErrServerNotFound      = errors.New("serveur introuvable")
	ErrParticipantNotFound = errors.New("participant non trouvé")
	ErrParticipantExists   = errors.New("participant déjà inscrit")
	ErrReminderNotFound    = errors.New("rappel non trouvé")
	ErrProfileNotFound     = errors.New("profil non trouvé")
	ErrCapacityExceeded    = errors.New("nombre maximal de participants confirmés atteint")
	ErrCannotReduceSlots   = errors.New("impossible de réduire le nombre de places")
	ErrCustomIDTaken       = errors.New("customId déjà utilisé")
	ErrValidation          = errors.New("requête invalide")
	ErrUnauthorized        = errors.New("authentification requise")
	ErrForbidden           = errors.New("accès refusé")
)

// ValidationError describes a rejected input field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid builds a ValidationError for field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var codes = []struct {
	err  error
	code string
}{
	{ErrEventNotFound, "event_not_found"},
	{ErrServerNotFound, "server_not_found"},
	{ErrParticipantNotFound, "participant_not_found"},
	{ErrParticipantExists, "participant_exists"},
	{ErrReminderNotFound, "reminder_not_found"},
	{ErrProfileNotFound, "profile_not_found"},
	{ErrCapacityExceeded, "capacity_exceeded"},
	{ErrCannotReduceSlots, "cannot_reduce_slots"},
	{ErrCustomIDTaken, "custom_id_taken"},
	{ErrValidation, "validation"},
	{ErrUnauthorized, "unauthorized"},
	{ErrForbidden, "forbidden"},
}

// Code returns the stable machine code of a domain error, or "" when err is
// not (or does not wrap) a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
