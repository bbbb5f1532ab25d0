package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/input"

	"github.com/google/uuid"
)

const guildID = "800000000000000001"

func newEventFixture() (*fakeStore, *EventService) {
	store := newFakeStore()
	store.addServer(7, guildID)
	svc := NewEventService(fakeEventRepo{store}, fakeServerRepo{store})
	return store, svc
}

func TestCreateEvent_ResolvesServerAndDefaults(t *testing.T) {
	t.Parallel()

	store, svc := newEventFixture()
	event := &entities.Event{
		Kind:       domain.KindActivity,
		CustomID:   "act-1",
		CreatorID:  "111111111111111111",
		Name:       "Primes du soir",
		Type:       "Primes",
		MaxPlayers: 4,
		LaunchDate: time.Now().Add(time.Hour),
		IsNotified: true,
	}

	if err := svc.CreateEvent(context.Background(), guildID, event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	stored := store.event(event.ID)
	if stored.ServerID != 7 {
		t.Fatalf("server id = %d, want 7", stored.ServerID)
	}
	if stored.IsNotified {
		t.Fatal("new event starts notified")
	}
	if !stored.IsActive {
		t.Fatal("new event is not active")
	}
}

func TestCreateEvent_Errors(t *testing.T) {
	t.Parallel()

	_, svc := newEventFixture()
	launch := time.Now().Add(time.Hour)
	valid := func() *entities.Event {
		return &entities.Event{Kind: domain.KindIncursion, CustomID: "inc-1", CreatorID: "1", Zone: "DC", LaunchDate: launch}
	}

	cases := []struct {
		name    string
		guild   string
		mutate  func(*entities.Event)
		wantErr error
	}{
		{"unknown guild", "800000000000000002", func(*entities.Event) {}, domain.ErrServerNotFound},
		{"bad guild", "guild", func(*entities.Event) {}, domain.ErrValidation},
		{"no launch date", guildID, func(e *entities.Event) { e.LaunchDate = time.Time{} }, domain.ErrValidation},
		{"no zone", guildID, func(e *entities.Event) { e.Zone = " " }, domain.ErrValidation},
		{"activity without players", guildID, func(e *entities.Event) {
			e.Kind = domain.KindActivity
			e.Name = "x"
			e.Type = "Primes"
		}, domain.ErrValidation},
		{"activity too many players", guildID, func(e *entities.Event) {
			e.Kind = domain.KindActivity
			e.Name = "x"
			e.Type = "Primes"
			e.MaxPlayers = domain.MaxActivityPlayers + 1
		}, domain.ErrValidation},
		{"activity bad type", guildID, func(e *entities.Event) {
			e.Kind = domain.KindActivity
			e.Name = "x"
			e.Type = "Raid"
			e.MaxPlayers = 4
		}, domain.ErrValidation},
	}
	for _, tc := range cases {
		e := valid()
		tc.mutate(e)
		if err := svc.CreateEvent(context.Background(), tc.guild, e); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestUpdateEvent_CannotShrinkBelowConfirmed(t *testing.T) {
	t.Parallel()

	store, svc := newEventFixture()
	activityID := store.addEvent(entities.Event{Kind: domain.KindActivity, MaxPlayers: 4})
	for i := 0; i < 3; i++ {
		store.addParticipant(activityID, userID(i), domain.StatusConfirmed)
	}

	two := 2
	if _, err := svc.UpdateEvent(context.Background(), domain.KindActivity, activityID, entities.EventPatch{MaxPlayers: &two}); !errors.Is(err, domain.ErrCannotReduceSlots) {
		t.Fatalf("err = %v, want ErrCannotReduceSlots", err)
	}
	three := 3
	updated, err := svc.UpdateEvent(context.Background(), domain.KindActivity, activityID, entities.EventPatch{MaxPlayers: &three})
	if err != nil {
		t.Fatalf("update event: %v", err)
	}
	if updated.Capacity() != 3 {
		t.Fatalf("capacity = %d, want 3", updated.Capacity())
	}
}

// signupOnLoad commits a signup right after the event has been loaded for
// an update, before the update is written.
type signupOnLoad struct {
	fakeEventRepo
	once   sync.Once
	signup func()
}

func (r *signupOnLoad) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	e, err := r.fakeEventRepo.FindByID(ctx, id)
	r.once.Do(r.signup)
	return e, err
}

func TestUpdateEvent_ShrinkCountsSignupCommittedMeanwhile(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	activityID := store.addEvent(entities.Event{Kind: domain.KindActivity, MaxPlayers: 5})
	for i := 0; i < 3; i++ {
		store.addParticipant(activityID, userID(i), domain.StatusConfirmed)
	}
	roster := NewParticipantService(fakeParticipantRepo{store}, fakeEventRepo{store})
	repo := &signupOnLoad{fakeEventRepo: fakeEventRepo{store}, signup: func() {
		if _, err := roster.AddParticipant(context.Background(), domain.KindActivity, activityID, input.Signup{UserID: userID(9)}); err != nil {
			t.Errorf("concurrent signup: %v", err)
		}
	}}
	svc := NewEventService(repo, fakeServerRepo{store})

	three := 3
	_, err := svc.UpdateEvent(context.Background(), domain.KindActivity, activityID, entities.EventPatch{MaxPlayers: &three})
	if !errors.Is(err, domain.ErrCannotReduceSlots) {
		t.Fatalf("err = %v, want ErrCannotReduceSlots", err)
	}
	if got := store.event(activityID).MaxPlayers; got != 5 {
		t.Fatalf("maxPlayers = %d, want 5", got)
	}
	if got := store.confirmedCount(activityID); got != 4 {
		t.Fatalf("confirmed count = %d, want 4", got)
	}
}

func TestUpdateEvent_RejectsOversizedActivity(t *testing.T) {
	t.Parallel()

	store, svc := newEventFixture()
	activityID := store.addEvent(entities.Event{Kind: domain.KindActivity, MaxPlayers: 4})

	huge := domain.MaxActivityPlayers + 1
	if _, err := svc.UpdateEvent(context.Background(), domain.KindActivity, activityID, entities.EventPatch{MaxPlayers: &huge}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if got := store.event(activityID).MaxPlayers; got != 4 {
		t.Fatalf("maxPlayers = %d, want 4", got)
	}
}

func TestUpdateEvent_RescheduleKeepsNotifiedFlag(t *testing.T) {
	t.Parallel()

	store, svc := newEventFixture()
	raidID := store.addEvent(entities.Event{Kind: domain.KindRaid, LaunchDate: time.Now(), IsNotified: true})

	later := time.Now().Add(2 * time.Hour)
	updated, err := svc.UpdateEvent(context.Background(), domain.KindRaid, raidID, entities.EventPatch{LaunchDate: &later})
	if err != nil {
		t.Fatalf("update event: %v", err)
	}
	if !updated.IsNotified || !store.event(raidID).IsNotified {
		t.Fatal("notified flag was reset by reschedule")
	}
}

func TestDeleteEvent_CascadesParticipants(t *testing.T) {
	t.Parallel()

	store, svc := newEventFixture()
	raidID := store.addEvent(entities.Event{Kind: domain.KindRaid, MessageID: "m-1"})
	store.addParticipant(raidID, userID(1), domain.StatusConfirmed)

	if err := svc.DeleteEvent(context.Background(), domain.KindIncursion, raidID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("wrong kind: err = %v, want ErrEventNotFound", err)
	}
	if err := svc.DeleteEvent(context.Background(), domain.KindRaid, raidID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if got := store.confirmedCount(raidID); got != 0 {
		t.Fatalf("participants left = %d, want 0", got)
	}
}

func TestGetEventByMessageID(t *testing.T) {
	t.Parallel()

	store, svc := newEventFixture()
	activityID := store.addEvent(entities.Event{Kind: domain.KindActivity, MaxPlayers: 2, MessageID: "900000000000000009"})

	got, err := svc.GetEventByMessageID(context.Background(), domain.KindActivity, "900000000000000009")
	if err != nil {
		t.Fatalf("get by message id: %v", err)
	}
	if got.ID != activityID {
		t.Fatalf("id = %s, want %s", got.ID, activityID)
	}
	if err := svc.DeleteEventByMessageID(context.Background(), domain.KindActivity, "900000000000000009"); err != nil {
		t.Fatalf("delete by message id: %v", err)
	}
	if _, err := svc.GetEventByMessageID(context.Background(), domain.KindActivity, "900000000000000009"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("after delete: err = %v, want ErrEventNotFound", err)
	}
}
