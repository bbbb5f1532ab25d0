package rest

import (
	"net/http"
	"time"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/input"
)

type participantResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	UbisoftID string    `json:"ubisoftId,omitempty"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toParticipantResponse(p *entities.Participant) participantResponse {
	return participantResponse{
		ID:        p.ID.String(),
		EventID:   p.EventID.String(),
		UserID:    p.UserID,
		UbisoftID: p.UbisoftID,
		Role:      p.Role,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type signupRequest struct {
	UserID    string `json:"userId"`
	UbisoftID string `json:"ubisoftId"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type participantPatchRequest struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func (s *Server) listParticipants(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		participants, err := s.participants.ListParticipants(r.Context(), kind, eventID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out := make([]participantResponse, len(participants))
		for i := range participants {
			out[i] = toParticipantResponse(&participants[i])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) addParticipant(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		var req signupRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		p, err := s.participants.AddParticipant(r.Context(), kind, eventID, input.Signup{
			UserID:    req.UserID,
			UbisoftID: req.UbisoftID,
			Role:      req.Role,
			Status:    req.Status,
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toParticipantResponse(p))
	}
}

func (s *Server) updateParticipant(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		var req participantPatchRequest
		if err := decodeJSON(r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		p, err := s.participants.UpdateParticipant(r.Context(), kind, id, entities.ParticipantPatch{
			Role:   req.Role,
			Status: req.Status,
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toParticipantResponse(p))
	}
}

func (s *Server) removeParticipant(kind domain.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := s.participants.RemoveParticipant(r.Context(), kind, id); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
