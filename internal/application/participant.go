package application

import (
	"context"
	"strings"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/input"
	"servdash/internal/ports/output"
	"servdash/pkg/discord"

	"github.com/google/uuid"
)

// ParticipantService manages event rosters and keeps the number of Confirmed
// participants within each event's capacity.
type ParticipantService struct {
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

func (s *ParticipantService) ListParticipants(ctx context.Context, kind domain.EventKind, eventID uuid.UUID) ([]entities.Participant, error) {
	if _, err := s.findEvent(ctx, kind, eventID); err != nil {
		return nil, err
	}
	return s.participantRepo.FindByEventID(ctx, eventID)
}

// AddParticipant signs a user up. A Confirmed signup on a full event fails
// with domain.ErrCapacityExceeded and writes nothing. An activity accepts one
// signup per user and per Ubisoft account.
func (s *ParticipantService) AddParticipant(ctx context.Context, kind domain.EventKind, eventID uuid.UUID, signup input.Signup) (*entities.Participant, error) {
	if signup.Status == "" {
		signup.Status = domain.StatusConfirmed
	}
	if err := validateSignup(kind, signup); err != nil {
		return nil, err
	}
	event, err := s.findEvent(ctx, kind, eventID)
	if err != nil {
		return nil, err
	}

	participant := &entities.Participant{
		ID:        uuid.New(),
		EventID:   eventID,
		UserID:    signup.UserID,
		UbisoftID: strings.TrimSpace(signup.UbisoftID),
		Role:      signup.Role,
		Status:    signup.Status,
	}
	switch {
	case kind == domain.KindActivity:
		err = s.participantRepo.CreateUnique(ctx, participant, event.Capacity())
	case participant.Status == domain.StatusConfirmed:
		err = s.participantRepo.CreateConfirmed(ctx, participant, event.Capacity())
	default:
		err = s.participantRepo.Create(ctx, participant)
	}
	if err != nil {
		return nil, err
	}
	return participant, nil
}

func validateSignup(kind domain.EventKind, signup input.Signup) error {
	if !discord.ValidSnowflake(signup.UserID) {
		return domain.Invalid("userId", "identifiant Discord attendu")
	}
	if !domain.ValidStatus(signup.Status) {
		return domain.Invalid("status", "statut inconnu")
	}
	if kind.RolesConstrained() && !domain.ValidRole(signup.Role) {
		return domain.Invalid("role", "DPS, Heal ou Tank attendu")
	}
	return nil
}

// UpdateParticipant changes role and/or status. Moving a participant to
// Confirmed goes through the capacity check; on failure the stored record is
// left as it was.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, kind domain.EventKind, participantID uuid.UUID, patch entities.ParticipantPatch) (*entities.Participant, error) {
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		return nil, domain.Invalid("status", "statut inconnu")
	}
	if patch.Role != nil && kind.RolesConstrained() && !domain.ValidRole(*patch.Role) {
		return nil, domain.Invalid("role", "DPS, Heal ou Tank attendu")
	}
	participant, event, err := s.findParticipant(ctx, kind, participantID)
	if err != nil {
		return nil, err
	}

	updated := *participant
	if patch.Role != nil {
		updated.Role = *patch.Role
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if updated.Status == domain.StatusConfirmed && participant.Status != domain.StatusConfirmed {
		err = s.participantRepo.UpdateConfirmed(ctx, &updated, event.Capacity())
	} else {
		err = s.participantRepo.Update(ctx, &updated)
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ParticipantService) RemoveParticipant(ctx context.Context, kind domain.EventKind, participantID uuid.UUID) error {
	if _, _, err := s.findParticipant(ctx, kind, participantID); err != nil {
		return err
	}
	return s.participantRepo.Delete(ctx, participantID)
}

func (s *ParticipantService) findEvent(ctx context.Context, kind domain.EventKind, eventID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Kind != kind {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// findParticipant loads a participant and its event, reporting participants
// of another event kind as not found.
func (s *ParticipantService) findParticipant(ctx context.Context, kind domain.EventKind, participantID uuid.UUID) (*entities.Participant, *entities.Event, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, participant.EventID)
	if err != nil {
		return nil, nil, err
	}
	if event.Kind != kind {
		return nil, nil, domain.ErrParticipantNotFound
	}
	return participant, event, nil
}
