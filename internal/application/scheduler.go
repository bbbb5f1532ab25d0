package application

import (
	"context"
	"log"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/output"
	"servdash/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

// DefaultReminderWindow is how far ahead of launch an event becomes due.
const DefaultReminderWindow = 15 * time.Minute

// ReminderPayload is the body sent to the bot for a due event, next to the
// "action" key added by the notifier.
type ReminderPayload struct {
	EventID    string                  `json:"eventId"`
	EventKind  domain.EventKind        `json:"eventKind"`
	Mentions   string                  `json:"mentions"`
	UserIDs    []string                `json:"userIds"`
	ThreadID   string                  `json:"threadId,omitempty"`
	MessageID  string                  `json:"messageId,omitempty"`
	LaunchDate string                  `json:"launchDate"`
	Embed      *discordgo.MessageEmbed `json:"embed"`
}

// PassResult summarizes one scheduler pass.
type PassResult struct {
	Due        int
	Dispatched int
	Failed     int
}

// ReminderScheduler notifies every event once when its launch enters the
// reminder window.
type ReminderScheduler struct {
	eventRepo       output.EventRepository
	participantRepo output.ParticipantRepository
	notifier        output.Notifier
	window          time.Duration
	clock           func() time.Time
}

func NewReminderScheduler(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	notifier output.Notifier,
	window time.Duration,
) *ReminderScheduler {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	return &ReminderScheduler{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		notifier:        notifier,
		window:          window,
		clock:           time.Now,
	}
}

// RunPass scans every event kind for due, not-yet-notified events and
// dispatches one reminder each. An event is marked notified only after a
// successful delivery, so a failed one is tried again on the next pass while
// it is still inside the window.
func (s *ReminderScheduler) RunPass(ctx context.Context) PassResult {
	var res PassResult
	now := s.clock()
	windowEnd := now.Add(s.window)

	for _, kind := range domain.EventKinds {
		if ctx.Err() != nil {
			return res
		}
		events, err := s.eventRepo.FindDueForReminder(ctx, kind, now, windowEnd)
		if err != nil {
			log.Printf("❌ Rappels %s: recherche des événements: %v", kind, err)
			continue
		}
		for i := range events {
			res.Due++
			if s.remind(ctx, &events[i]) {
				res.Dispatched++
			} else {
				res.Failed++
			}
		}
	}
	return res
}

func (s *ReminderScheduler) remind(ctx context.Context, event *entities.Event) bool {
	confirmed, err := s.participantRepo.FindByEventIDAndStatus(ctx, event.ID, domain.StatusConfirmed)
	if err != nil {
		log.Printf("❌ Rappel %s %s: participants: %v", event.Kind, event.ID, err)
		return false
	}
	userIDs := make([]string, len(confirmed))
	for i, p := range confirmed {
		userIDs[i] = p.UserID
	}
	payload := ReminderPayload{
		EventID:    event.ID.String(),
		EventKind:  event.Kind,
		Mentions:   discord.Mentions(userIDs),
		UserIDs:    userIDs,
		ThreadID:   event.ThreadID,
		MessageID:  event.MessageID,
		LaunchDate: discord.FormatLaunchDate(event.LaunchDate),
		Embed:      discord.BuildReminderEmbed(event, confirmed),
	}
	if err := s.notifier.Send(ctx, reminderAction(event.Kind), payload); err != nil {
		log.Printf("❌ Rappel %s %s non délivré: %v", event.Kind, event.ID, err)
		return false
	}
	marked, err := s.eventRepo.MarkNotified(ctx, event.ID)
	if err != nil {
		log.Printf("❌ Rappel %s %s: marquage notifié: %v", event.Kind, event.ID, err)
		return true
	}
	if !marked {
		log.Printf("⚠️ Rappel %s %s déjà marqué notifié", event.Kind, event.ID)
	}
	return true
}

func reminderAction(kind domain.EventKind) string {
	return string(kind) + "Reminder"
}
