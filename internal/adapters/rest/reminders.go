package rest

import (
	"net/http"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
)

type reminderResponse struct {
	ID         int64             `json:"id"`
	EventType  domain.EventKind  `json:"eventType"`
	EventID    string            `json:"eventId"`
	RemindAt   time.Time         `json:"remindAt"`
	RemindKind domain.RemindKind `json:"remindKind"`
}

func toReminderResponses(in []entities.Reminder) []reminderResponse {
	out := make([]reminderResponse, len(in))
	for i, r := range in {
		out[i] = reminderResponse{
			ID:         r.ID,
			EventType:  r.EventKind,
			EventID:    r.EventID.String(),
			RemindAt:   r.RemindAt,
			RemindKind: r.RemindKind,
		}
	}
	return out
}

type scheduleRequest struct {
	EventType   string   `json:"eventType"`
	EventID     string   `json:"eventId"`
	RemindKinds []string `json:"remindKinds"`
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := s.reminders.ListUpcomingReminders(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderResponses(reminders))
}

func (s *Server) scheduleReminders(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.RemindKinds == nil {
		s.writeError(w, r, domain.Invalid("remindKinds", `["15min","5min"] attendu`))
		return
	}
	eventID, err := parseUUID("eventId", req.EventID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.reminders.ScheduleReminders(r.Context(), req.EventType, eventID, req.RemindKinds)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scheduled": toReminderResponses(created)})
}

func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.reminders.DeleteReminder(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type profileResponse struct {
	DiscordID string    `json:"discordId"`
	UbisoftID string    `json:"ubisoftId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.GetProfile(r.Context(), r.PathValue("discordId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{DiscordID: p.DiscordID, UbisoftID: p.UbisoftID, UpdatedAt: p.UpdatedAt})
}

func (s *Server) putProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UbisoftID string `json:"ubisoftId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.profiles.UpsertProfile(r.Context(), r.PathValue("discordId"), req.UbisoftID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{DiscordID: p.DiscordID, UbisoftID: p.UbisoftID, UpdatedAt: p.UpdatedAt})
}
