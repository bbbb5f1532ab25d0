package application

import (
	"context"
	"fmt"
	"strings"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/output"
	"servdash/pkg/discord"

	"github.com/google/uuid"
)

type EventService struct {
	eventRepo  output.EventRepository
	serverRepo output.ServerRepository
}

func NewEventService(
	eventRepo output.EventRepository,
	serverRepo output.ServerRepository,
) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		serverRepo: serverRepo,
	}
}

// CreateEvent validates event for its kind, attaches it to the server owning
// guildID and persists it. isNotified always starts false.
func (s *EventService) CreateEvent(ctx context.Context, guildID string, event *entities.Event) error {
	if !discord.ValidSnowflake(guildID) {
		return domain.Invalid("guildId", "identifiant de serveur Discord attendu")
	}
	if err := validateNewEvent(event); err != nil {
		return err
	}
	server, err := s.serverRepo.FindByDiscordID(ctx, guildID)
	if err != nil {
		return err
	}
	event.ID = uuid.New()
	event.ServerID = server.ID
	event.IsNotified = false
	event.IsActive = true
	return s.eventRepo.Create(ctx, event)
}

func validateNewEvent(e *entities.Event) error {
	if !e.Kind.Valid() {
		return domain.Invalid("kind", "type d'événement invalide")
	}
	if e.LaunchDate.IsZero() {
		return domain.Invalid("launchDate", "requis")
	}
	type field struct{ name, value string }
	var required []field
	switch e.Kind {
	case domain.KindRaid:
		required = append(required, field{"announcementCreatorId", e.CreatorID})
		required = append(required, field{"raidCreatorId", e.RaidLeadID})
		required = append(required, field{"name", e.Name})
		required = append(required, field{"zone", e.Zone})
	case domain.KindIncursion:
		required = append(required, field{"customId", e.CustomID})
		required = append(required, field{"creatorId", e.CreatorID})
		required = append(required, field{"zone", e.Zone})
	case domain.KindActivity:
		required = append(required, field{"customId", e.CustomID})
		required = append(required, field{"creatorId", e.CreatorID})
		required = append(required, field{"name", e.Name})
		if !domain.ValidActivityType(e.Type) {
			return domain.Invalid("type", "type d'activité inconnu")
		}
		if err := validateMaxPlayers(e.MaxPlayers); err != nil {
			return err
		}
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.Invalid(f.name, "requis")
		}
	}
	return nil
}

func validateMaxPlayers(n int) error {
	if n <= 0 {
		return domain.Invalid("maxPlayers", "doit être strictement positif")
	}
	if n > domain.MaxActivityPlayers {
		return domain.Invalid("maxPlayers", fmt.Sprintf("%d au maximum", domain.MaxActivityPlayers))
	}
	return nil
}

// GetEvent loads an event of kind with its participants. An event of another
// kind is reported as not found.
func (s *EventService) GetEvent(ctx context.Context, kind domain.EventKind, id uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Kind != kind {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (s *EventService) GetEventByMessageID(ctx context.Context, kind domain.EventKind, messageID string) (*entities.Event, error) {
	if strings.TrimSpace(messageID) == "" {
		return nil, domain.Invalid("messageId", "requis")
	}
	return s.eventRepo.FindByMessageID(ctx, kind, messageID)
}

func (s *EventService) ListEvents(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	return s.eventRepo.List(ctx, filter)
}

// UpdateEvent applies patch. Lowering an activity's maxPlayers below its
// current Confirmed count is refused by the repository, which counts under the
// same lock as signups. The notified flag is left untouched, even when
// launchDate moves.
func (s *EventService) UpdateEvent(ctx context.Context, kind domain.EventKind, id uuid.UUID, patch entities.EventPatch) (*entities.Event, error) {
	if patch.LaunchDate != nil && patch.LaunchDate.IsZero() {
		return nil, domain.Invalid("launchDate", "requis")
	}
	if patch.Type != nil && !domain.ValidActivityType(*patch.Type) {
		return nil, domain.Invalid("type", "type d'activité inconnu")
	}
	if patch.MaxPlayers != nil {
		if err := validateMaxPlayers(*patch.MaxPlayers); err != nil {
			return nil, err
		}
	}
	event, err := s.GetEvent(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(event)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, kind domain.EventKind, id uuid.UUID) error {
	if _, err := s.GetEvent(ctx, kind, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *EventService) DeleteEventByMessageID(ctx context.Context, kind domain.EventKind, messageID string) error {
	event, err := s.GetEventByMessageID(ctx, kind, messageID)
	if err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, event.ID)
}
