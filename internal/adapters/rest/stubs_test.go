package rest

import (
	"context"
	"testing"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/infrastructure/i18n"
	"servdash/internal/ports/input"

	"github.com/google/uuid"
)

type stubEvents struct {
	err       error
	event     *entities.Event
	created   *entities.Event
	guildID   string
	patch     entities.EventPatch
	deletedID uuid.UUID
}

func (s *stubEvents) CreateEvent(_ context.Context, guildID string, e *entities.Event) error {
	if s.err != nil {
		return s.err
	}
	s.guildID = guildID
	e.ID = uuid.New()
	s.created = e
	return nil
}

func (s *stubEvents) GetEvent(_ context.Context, kind domain.EventKind, id uuid.UUID) (*entities.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.event, nil
}

func (s *stubEvents) GetEventByMessageID(_ context.Context, kind domain.EventKind, messageID string) (*entities.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.event, nil
}

func (s *stubEvents) ListEvents(_ context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.event == nil {
		return nil, nil
	}
	return []entities.Event{*s.event}, nil
}

func (s *stubEvents) UpdateEvent(_ context.Context, kind domain.EventKind, id uuid.UUID, patch entities.EventPatch) (*entities.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.patch = patch
	return s.event, nil
}

func (s *stubEvents) DeleteEvent(_ context.Context, kind domain.EventKind, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

func (s *stubEvents) DeleteEventByMessageID(_ context.Context, kind domain.EventKind, messageID string) error {
	return s.err
}

type stubParticipants struct {
	err    error
	signup input.Signup
	kind   domain.EventKind
}

func (s *stubParticipants) ListParticipants(_ context.Context, kind domain.EventKind, eventID uuid.UUID) ([]entities.Participant, error) {
	return nil, s.err
}

func (s *stubParticipants) AddParticipant(_ context.Context, kind domain.EventKind, eventID uuid.UUID, signup input.Signup) (*entities.Participant, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.kind, s.signup = kind, signup
	return &entities.Participant{ID: uuid.New(), EventID: eventID, UserID: signup.UserID, Role: signup.Role, Status: domain.StatusConfirmed}, nil
}

func (s *stubParticipants) UpdateParticipant(_ context.Context, kind domain.EventKind, id uuid.UUID, patch entities.ParticipantPatch) (*entities.Participant, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.kind = kind
	return &entities.Participant{ID: id}, nil
}

func (s *stubParticipants) RemoveParticipant(_ context.Context, kind domain.EventKind, id uuid.UUID) error {
	s.kind = kind
	return s.err
}

type stubReminders struct {
	err     error
	created []entities.Reminder
	kinds   []string
}

func (s *stubReminders) ScheduleReminders(_ context.Context, eventType string, eventID uuid.UUID, remindKinds []string) ([]entities.Reminder, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.kinds = remindKinds
	return s.created, nil
}

func (s *stubReminders) ListUpcomingReminders(context.Context) ([]entities.Reminder, error) {
	return s.created, s.err
}

func (s *stubReminders) DeleteReminder(context.Context, int64) error {
	return s.err
}

type stubProfiles struct {
	err error
}

func (s *stubProfiles) GetProfile(_ context.Context, discordID string) (*entities.UbisoftProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entities.UbisoftProfile{DiscordID: discordID, UbisoftID: "Agent47"}, nil
}

func (s *stubProfiles) UpsertProfile(_ context.Context, discordID, ubisoftID string) (*entities.UbisoftProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entities.UbisoftProfile{DiscordID: discordID, UbisoftID: ubisoftID}, nil
}

type fixture struct {
	events       *stubEvents
	participants *stubParticipants
	reminders    *stubReminders
	profiles     *stubProfiles
	server       *Server
}

const (
	testBotKey = "bot-api-key"
	testSecret = "refresh-secret"
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tr, err := i18n.NewTranslator("fr")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	f := &fixture{
		events:       &stubEvents{},
		participants: &stubParticipants{},
		reminders:    &stubReminders{},
		profiles:     &stubProfiles{},
	}
	f.server = NewServer(Deps{
		Events:       f.events,
		Participants: f.participants,
		Reminders:    f.reminders,
		Profiles:     f.profiles,
		Auth:         NewAuthenticator(testBotKey, testSecret),
		Translator:   tr,
	})
	return f
}
