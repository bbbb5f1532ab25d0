package rest

import (
	"net/http"
	"strconv"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
)

type eventResponse struct {
	ID            string                `json:"id"`
	Kind          domain.EventKind      `json:"kind"`
	ServerID      int64                 `json:"serverId"`
	CustomID      string                `json:"customId,omitempty"`
	CreatorID     string                `json:"creatorId"`
	RaidCreatorID string                `json:"raidCreatorId,omitempty"`
	Name          string                `json:"name,omitempty"`
	Zone          string                `json:"zone,omitempty"`
	Type          string                `json:"type,omitempty"`
	Description   string                `json:"description,omitempty"`
	MaxPlayers    int                   `json:"maxPlayers"`
	LaunchDate    time.Time             `json:"launchDate"`
	ThreadID      string                `json:"threadId,omitempty"`
	MessageID     string                `json:"messageId,omitempty"`
	IsNotified    bool                  `json:"isNotified"`
	IsActive      bool                  `json:"isActive"`
	Participants  []participantResponse `json:"participants"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func toEventResponse(e *entities.Event) eventResponse {
	out := eventResponse{
		ID:            e.ID.String(),
		Kind:          e.Kind,
		ServerID:      e.ServerID,
		CustomID:      e.CustomID,
		CreatorID:     e.CreatorID,
		RaidCreatorID: e.RaidLeadID,
		Name:          e.Name,
		Zone:          e.Zone,
		Type:          e.Type,
		Description:   e.Description,
		MaxPlayers:    e.Capacity(),
		LaunchDate:    e.LaunchDate,
		ThreadID:      e.ThreadID,
		MessageID:     e.MessageID,
		IsNotified:    e.IsNotified,
		IsActive:      e.IsActive,
		Participants:  make([]participantResponse, len(e.Participants)),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	for i := range e.Participants {
		out.Participants[i] = toParticipantResponse(&e.Participants[i])
	}
	return out
}

// createEventRequest covers the three kinds. Raids name their creator
// announcementCreatorId; the other kinds use creatorId.
type createEventRequest struct {
	GuildID               string    `json:"guildId"`
	CustomID              string    `json:"customId"`
	CreatorID             string    `json:"creatorId"`
	AnnouncementCreatorID string    `json:"announcementCreatorId"`
	RaidCreatorID         string    `json:"raidCreatorId"`
	Name                  string    `json:"name"`
	Zone                  string    `json:"zone"`
	Type                  string    `json:"type"`
	Description           string    `json:"description"`
	MaxPlayers            int       `json:"maxPlayers"`
	LaunchDate            time.Time `json:"launchDate"`
	ThreadID              string    `json:"threadId"`
	MessageID             string    `json:"messageId"`
}

func (req createEventRequest) toEvent(kind domain.EventKind) *entities.Event {
	e := &entities.Event{
		Kind:        kind,
		CustomID:    req.CustomID,
		CreatorID:   req.CreatorID,
		Name:        req.Name,
		Zone:        req.Zone,
		Description: req.Description,
		LaunchDate:  req.LaunchDate,
		ThreadID:    req.ThreadID,
		MessageID:   req.MessageID,
	}
	switch kind {
	case domain.KindRaid:
		if req.AnnouncementCreatorID != "" {
			e.CreatorID = req.AnnouncementCreatorID
		}
		e.RaidLeadID = req.RaidCreatorID
	case domain.KindActivity:
		e.Type = req.Type
		e.MaxPlayers = req.MaxPlayers
	}
	return e
}

type updateEventRequest struct {
	LaunchDate  *time.Time `json:"launchDate"`
	Name        *string    `json:"name"`
	Zone        *string    `json:"zone"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	MaxPlayers  *int       `json:"maxPlayers"`
	ThreadID    *string    `json:"threadId"`
	MessageID   *string    `json:"messageId"`
	IsActive    *bool      `json:"isActive"`
}

func (req updateEventRequest) toPatch(kind domain.EventKind) (entities.EventPatch, error) {
	if kind != domain.KindActivity {
		if req.Type != nil {
			return entities.EventPatch{}, domain.Invalid("type", "réservé aux activités")
		}
		if req.MaxPlayers != nil {
			return entities.EventPatch{}, domain.Invalid("maxPlayers", "réservé aux activités")
		}
	}
	return entities.EventPatch{
		LaunchDate:  req.LaunchDate,
		Name:        req.Name,
		Zone:        req.Zone,
		Type:        req.Type,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
		ThreadID:    req.ThreadID,
		MessageID:   req.MessageID,
		IsActive:    req.IsActive,
	}, nil
}

func (s *Server) listEvents(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := entities.EventFilter{Kind: kind, DiscordID: r.URL.Query().Get("discordId")}
		if raw := r.URL.Query().Get("serverId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				s.writeError(w, r, domain.Invalid("serverId", "identifiant numérique attendu"))
				return
			}
			filter.ServerID = id
		}
		events, err := s.events.ListEvents(r.Context(), filter)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out := make([]eventResponse, len(events))
		for i := range events {
			out[i] = toEventResponse(&events[i])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) createEvent(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEventRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		event := req.toEvent(kind)
		if err := s.events.CreateEvent(r.Context(), req.GuildID, event); err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(event))
	}
}

func (s *Server) getEvent(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		event, err := s.events.GetEvent(r.Context(), kind, id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(event))
	}
}

func (s *Server) getEventByMessage(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := s.events.GetEventByMessageID(r.Context(), kind, r.PathValue("messageId"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(event))
	}
}

func (s *Server) updateEvent(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		var req updateEventRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		patch, err := req.toPatch(kind)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		event, err := s.events.UpdateEvent(r.Context(), kind, id, patch)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(event))
	}
}

func (s *Server) deleteEvent(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := s.events.DeleteEvent(r.Context(), kind, id); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) deleteEventByMessage(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.events.DeleteEventByMessageID(r.Context(), kind, r.PathValue("messageId")); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
