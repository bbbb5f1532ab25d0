package database

import (
	"context"
	"fmt"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/infrastructure/database/sqlc_generated"
	"servdash/internal/ports/output"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
	q    *sqlc_generated.Queries
}

func NewEventRepository(pool *pgxpool.Pool, q *sqlc_generated.Queries) *EventRepository {
	return &EventRepository{pool: pool, q: q}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	row, err := r.q.CreateEvent(ctx, sqlc_generated.CreateEventParams{
		ID:          uuidToPg(event.ID),
		Kind:        string(event.Kind),
		ServerID:    event.ServerID,
		CustomID:    event.CustomID,
		CreatorID:   event.CreatorID,
		RaidLeadID:  event.RaidLeadID,
		Name:        event.Name,
		Zone:        event.Zone,
		Type:        event.Type,
		Description: event.Description,
		MaxPlayers:  int32(event.MaxPlayers),
		LaunchDate:  timeToTimestamptz(event.LaunchDate),
		ThreadID:    event.ThreadID,
		MessageID:   event.MessageID,
		IsNotified:  event.IsNotified,
		IsActive:    event.IsActive,
	})
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return domain.ErrCustomIDTaken
		case pgForeignKeyViolation:
			return domain.ErrServerNotFound
		}
		return fmt.Errorf("create event: %w", err)
	}
	event.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	row, err := r.q.GetEventByID(ctx, uuidToPg(id))
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", notFound(err, domain.ErrEventNotFound))
	}
	e := eventToDomain(row)
	if err := r.attachParticipants(ctx, []*entities.Event{&e}); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) FindByMessageID(ctx context.Context, kind domain.EventKind, messageID string) (*entities.Event, error) {
	row, err := r.q.GetEventByMessageID(ctx, sqlc_generated.GetEventByMessageIDParams{
		Kind:      string(kind),
		MessageID: messageID,
	})
	if err != nil {
		return nil, fmt.Errorf("get event by message id: %w", notFound(err, domain.ErrEventNotFound))
	}
	e := eventToDomain(row)
	if err := r.attachParticipants(ctx, []*entities.Event{&e}); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	params := sqlc_generated.ListEventsParams{
		Kind:      optionalText(string(filter.Kind)),
		DiscordID: optionalText(filter.DiscordID),
	}
	if filter.ServerID != 0 {
		params.ServerID = pgtype.Int8{Int64: filter.ServerID, Valid: true}
	}
	rows, err := r.q.ListEvents(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]entities.Event, len(rows))
	refs := make([]*entities.Event, len(rows))
	for i := range rows {
		out[i] = eventToDomain(rows[i])
		refs[i] = &out[i]
	}
	if err := r.attachParticipants(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EventRepository) FindDueForReminder(ctx context.Context, kind domain.EventKind, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.q.FindDueEvents(ctx, sqlc_generated.FindDueEventsParams{
		Kind:        string(kind),
		WindowStart: timeToTimestamptz(from),
		WindowEnd:   timeToTimestamptz(to),
	})
	if err != nil {
		return nil, fmt.Errorf("find due %s events: %w", kind, err)
	}
	out := make([]entities.Event, len(rows))
	for i := range rows {
		out[i] = eventToDomain(rows[i])
	}
	return out, nil
}

// attachParticipants loads the rosters of events in one query.
func (r *EventRepository) attachParticipants(ctx context.Context, events []*entities.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]pgtype.UUID, len(events))
	byID := make(map[uuid.UUID]*entities.Event, len(events))
	for i, e := range events {
		ids[i] = uuidToPg(e.ID)
		e.Participants = []entities.Participant{}
		byID[e.ID] = e
	}
	rows, err := r.q.GetParticipantsByEventIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get participants: %w", err)
	}
	for i := range rows {
		p := participantToDomain(rows[i])
		if e, ok := byID[p.EventID]; ok {
			e.Participants = append(e.Participants, p)
		}
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	return withEventLock(ctx, r.pool, r.q, event.ID, func(q *sqlc_generated.Queries, _ int) error {
		count, err := countConfirmed(ctx, q, event.ID)
		if err != nil {
			return err
		}
		if count > event.Capacity() {
			return domain.ErrCannotReduceSlots
		}
		return updateEvent(ctx, q, event)
	})
}

func updateEvent(ctx context.Context, q *sqlc_generated.Queries, event *entities.Event) error {
	n, err := q.UpdateEvent(ctx, sqlc_generated.UpdateEventParams{
		ID:          uuidToPg(event.ID),
		Name:        event.Name,
		Zone:        event.Zone,
		Type:        event.Type,
		Description: event.Description,
		MaxPlayers:  int32(event.MaxPlayers),
		LaunchDate:  timeToTimestamptz(event.LaunchDate),
		ThreadID:    event.ThreadID,
		MessageID:   event.MessageID,
		IsActive:    event.IsActive,
	})
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) MarkNotified(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.q.MarkEventNotified(ctx, uuidToPg(id))
	if err != nil {
		return false, fmt.Errorf("mark event notified: %w", err)
	}
	return n > 0, nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.q.DeleteEvent(ctx, uuidToPg(id))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
