package database

import (
	"errors"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/infrastructure/database/sqlc_generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func uuidToPg(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgToUUID(id pgtype.UUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return uuid.UUID(id.Bytes)
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// notFound maps pgx.ErrNoRows to sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func eventToDomain(e sqlc_generated.Event) entities.Event {
	return entities.Event{
		ID:          pgToUUID(e.ID),
		Kind:        domain.EventKind(e.Kind),
		ServerID:    e.ServerID,
		CustomID:    e.CustomID,
		CreatorID:   e.CreatorID,
		RaidLeadID:  e.RaidLeadID,
		Name:        e.Name,
		Zone:        e.Zone,
		Type:        e.Type,
		Description: e.Description,
		MaxPlayers:  int(e.MaxPlayers),
		LaunchDate:  pgtypeTimestamptzToTime(e.LaunchDate),
		ThreadID:    e.ThreadID,
		MessageID:   e.MessageID,
		IsNotified:  e.IsNotified,
		IsActive:    e.IsActive,
		CreatedAt:   pgtypeTimestamptzToTime(e.CreatedAt),
		UpdatedAt:   pgtypeTimestamptzToTime(e.UpdatedAt),
	}
}

func participantToDomain(p sqlc_generated.Participant) entities.Participant {
	return entities.Participant{
		ID:        pgToUUID(p.ID),
		EventID:   pgToUUID(p.EventID),
		UserID:    p.UserID,
		UbisoftID: p.UbisoftID,
		Role:      p.Role,
		Status:    p.Status,
		CreatedAt: pgtypeTimestamptzToTime(p.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}

func reminderToDomain(r sqlc_generated.ScheduledReminder) entities.Reminder {
	return entities.Reminder{
		ID:         r.ID,
		EventKind:  domain.EventKind(r.EventKind),
		EventID:    pgToUUID(r.EventID),
		RemindAt:   pgtypeTimestamptzToTime(r.RemindAt),
		RemindKind: domain.RemindKind(r.RemindKind),
	}
}

func serverToDomain(s sqlc_generated.Server) entities.Server {
	return entities.Server{
		ID:         s.ID,
		Name:       s.Name,
		DiscordID:  s.DiscordID,
		TD2Enabled: s.Td2Enabled,
	}
}

func profileToDomain(p sqlc_generated.UserProfile) entities.UbisoftProfile {
	return entities.UbisoftProfile{
		DiscordID: p.DiscordID,
		UbisoftID: p.UbisoftID,
		CreatedAt: pgtypeTimestamptzToTime(p.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}
