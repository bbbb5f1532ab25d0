package application

import (
	"context"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/output"

	"github.com/google/uuid"
)

// ReminderService creates the reminder records the bot polls on its own.
type ReminderService struct {
	reminderRepo output.ReminderRepository
	eventRepo    output.EventRepository
	clock        func() time.Time
}

func NewReminderService(reminderRepo output.ReminderRepository, eventRepo output.EventRepository) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		eventRepo:    eventRepo,
		clock:        time.Now,
	}
}

// ScheduleReminders creates one record per remind kind at launchDate minus its
// offset. Kinds whose time has already passed are skipped.
func (s *ReminderService) ScheduleReminders(ctx context.Context, eventType string, eventID uuid.UUID, remindKinds []string) ([]entities.Reminder, error) {
	kind, err := domain.ParseEventKind(eventType)
	if err != nil {
		return nil, err
	}
	offsets := make([]time.Duration, len(remindKinds))
	for i, rk := range remindKinds {
		offset, ok := domain.RemindKind(rk).Offset()
		if !ok {
			return nil, domain.Invalid("remindKinds", `["15min","5min"] attendu`)
		}
		offsets[i] = offset
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Kind != kind {
		return nil, domain.ErrEventNotFound
	}

	now := s.clock()
	created := make([]entities.Reminder, 0, len(remindKinds))
	for i, rk := range remindKinds {
		remindAt := event.LaunchDate.Add(-offsets[i])
		if !remindAt.After(now) {
			continue
		}
		reminder := entities.Reminder{
			EventKind:  kind,
			EventID:    eventID,
			RemindAt:   remindAt,
			RemindKind: domain.RemindKind(rk),
		}
		if err := s.reminderRepo.Create(ctx, &reminder); err != nil {
			return nil, err
		}
		created = append(created, reminder)
	}
	return created, nil
}

// ListUpcomingReminders returns the reminders that have not fired yet.
func (s *ReminderService) ListUpcomingReminders(ctx context.Context) ([]entities.Reminder, error) {
	return s.reminderRepo.ListFrom(ctx, s.clock())
}

func (s *ReminderService) DeleteReminder(ctx context.Context, id int64) error {
	return s.reminderRepo.Delete(ctx, id)
}
