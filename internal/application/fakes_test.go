package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"

	"github.com/google/uuid"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fakeStore backs every repository port with maps guarded by one mutex, so
// the count-then-write methods are atomic like the SQL implementation.
type fakeStore struct {
	mu           sync.Mutex
	servers      map[string]entities.Server
	events       map[uuid.UUID]entities.Event
	participants map[uuid.UUID]entities.Participant
	order        []uuid.UUID
	reminders    map[int64]entities.Reminder
	profiles     map[string]entities.UbisoftProfile
	nextReminder int64
	markCalls    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		servers:      map[string]entities.Server{},
		events:       map[uuid.UUID]entities.Event{},
		participants: map[uuid.UUID]entities.Participant{},
		reminders:    map[int64]entities.Reminder{},
		profiles:     map[string]entities.UbisoftProfile{},
	}
}

func (s *fakeStore) addServer(id int64, discordID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servers[discordID] = entities.Server{ID: id, DiscordID: discordID, Name: "srv"}
}

func (s *fakeStore) addEvent(e entities.Event) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.events[e.ID] = e
	return e.ID
}

func (s *fakeStore) addParticipant(eventID uuid.UUID, userID, status string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := entities.Participant{ID: uuid.New(), EventID: eventID, UserID: userID, Role: domain.RoleDPS, Status: status}
	s.participants[p.ID] = p
	s.order = append(s.order, p.ID)
	return p.ID
}

func (s *fakeStore) confirmedCount(eventID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(eventID, domain.StatusConfirmed, uuid.Nil)
}

func (s *fakeStore) countLocked(eventID uuid.UUID, status string, exclude uuid.UUID) int {
	n := 0
	for id, p := range s.participants {
		if id != exclude && p.EventID == eventID && p.Status == status {
			n++
		}
	}
	return n
}

func (s *fakeStore) event(id uuid.UUID) entities.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[id]
}

func (s *fakeStore) participant(id uuid.UUID) entities.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.participants[id]
}

// eventRepo

type fakeEventRepo struct{ *fakeStore }

func (r fakeEventRepo) Create(_ context.Context, e *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.events {
		if e.CustomID != "" && existing.CustomID == e.CustomID {
			return domain.ErrCustomIDTaken
		}
	}
	r.events[e.ID] = *e
	return nil
}

func (r fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r fakeEventRepo) FindByMessageID(_ context.Context, kind domain.EventKind, messageID string) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind == kind && e.MessageID == messageID {
			return &e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r fakeEventRepo) List(_ context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Event
	for _, e := range r.events {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if filter.ServerID != 0 && e.ServerID != filter.ServerID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LaunchDate.Before(out[j].LaunchDate) })
	return out, nil
}

func (r fakeEventRepo) FindDueForReminder(_ context.Context, kind domain.EventKind, from, to time.Time) ([]entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Event
	for _, e := range r.events {
		if e.Kind == kind && e.DueForReminder(from, to.Sub(from)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r fakeEventRepo) Update(_ context.Context, e *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if r.countLocked(e.ID, domain.StatusConfirmed, uuid.Nil) > e.Capacity() {
		return domain.ErrCannotReduceSlots
	}
	updated := *e
	updated.IsNotified = stored.IsNotified
	r.events[e.ID] = updated
	return nil
}

func (r fakeEventRepo) MarkNotified(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markCalls++
	e, ok := r.events[id]
	if !ok {
		return false, domain.ErrEventNotFound
	}
	if e.IsNotified {
		return false, nil
	}
	e.IsNotified = true
	r.events[id] = e
	return true, nil
}

func (r fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	for pid, p := range r.participants {
		if p.EventID == id {
			delete(r.participants, pid)
		}
	}
	for rid, rem := range r.reminders {
		if rem.EventID == id {
			delete(r.reminders, rid)
		}
	}
	return nil
}

// participantRepo

type fakeParticipantRepo struct{ *fakeStore }

func (r fakeParticipantRepo) Create(_ context.Context, p *entities.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(p)
}

func (r fakeParticipantRepo) insertLocked(p *entities.Participant) error {
	if _, ok := r.events[p.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	r.participants[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r fakeParticipantRepo) CreateConfirmed(_ context.Context, p *entities.Participant, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countLocked(p.EventID, domain.StatusConfirmed, uuid.Nil) >= capacity {
		return domain.ErrCapacityExceeded
	}
	return r.insertLocked(p)
}

func (r fakeParticipantRepo) CreateUnique(_ context.Context, p *entities.Participant, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.participants {
		if existing.EventID != p.EventID {
			continue
		}
		if existing.UserID == p.UserID || (p.UbisoftID != "" && existing.UbisoftID == p.UbisoftID) {
			return domain.ErrParticipantExists
		}
	}
	if p.Status == domain.StatusConfirmed && r.countLocked(p.EventID, domain.StatusConfirmed, uuid.Nil) >= capacity {
		return domain.ErrCapacityExceeded
	}
	return r.insertLocked(p)
}

func (r fakeParticipantRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return &p, nil
}

func (r fakeParticipantRepo) FindByEventID(_ context.Context, eventID uuid.UUID) ([]entities.Participant, error) {
	return r.filter(func(p entities.Participant) bool { return p.EventID == eventID }), nil
}

func (r fakeParticipantRepo) FindByEventIDAndStatus(_ context.Context, eventID uuid.UUID, status string) ([]entities.Participant, error) {
	return r.filter(func(p entities.Participant) bool { return p.EventID == eventID && p.Status == status }), nil
}

func (r fakeParticipantRepo) filter(keep func(entities.Participant) bool) []entities.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Participant
	for _, id := range r.order {
		p, ok := r.participants[id]
		if ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r fakeParticipantRepo) Update(_ context.Context, p *entities.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	r.participants[p.ID] = *p
	return nil
}

func (r fakeParticipantRepo) UpdateConfirmed(_ context.Context, p *entities.Participant, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[p.ID]; !ok {
		return domain.ErrParticipantNotFound
	}
	if r.countLocked(p.EventID, domain.StatusConfirmed, p.ID) >= capacity {
		return domain.ErrCapacityExceeded
	}
	r.participants[p.ID] = *p
	return nil
}

func (r fakeParticipantRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[id]; !ok {
		return domain.ErrParticipantNotFound
	}
	delete(r.participants, id)
	return nil
}

// reminderRepo, serverRepo, profileRepo

type fakeReminderRepo struct{ *fakeStore }

func (r fakeReminderRepo) Create(_ context.Context, rem *entities.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextReminder++
	rem.ID = r.nextReminder
	r.reminders[rem.ID] = *rem
	return nil
}

func (r fakeReminderRepo) ListFrom(_ context.Context, from time.Time) ([]entities.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Reminder
	for _, rem := range r.reminders {
		if !rem.RemindAt.Before(from) {
			out = append(out, rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindAt.Before(out[j].RemindAt) })
	return out, nil
}

func (r fakeReminderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reminders[id]; !ok {
		return domain.ErrReminderNotFound
	}
	delete(r.reminders, id)
	return nil
}

type fakeServerRepo struct{ *fakeStore }

func (r fakeServerRepo) FindByDiscordID(_ context.Context, discordID string) (*entities.Server, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	srv, ok := r.servers[discordID]
	if !ok {
		return nil, domain.ErrServerNotFound
	}
	return &srv, nil
}

type fakeProfileRepo struct{ *fakeStore }

func (r fakeProfileRepo) FindByDiscordID(_ context.Context, discordID string) (*entities.UbisoftProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[discordID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r fakeProfileRepo) Upsert(_ context.Context, p *entities.UbisoftProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.DiscordID] = *p
	return nil
}

// notifier

type sentMessage struct {
	action  string
	payload ReminderPayload
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, action string, payload any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	p, ok := payload.(ReminderPayload)
	if !ok {
		return errors.New("unexpected payload type")
	}
	n.sent = append(n.sent, sentMessage{action: action, payload: p})
	return nil
}
