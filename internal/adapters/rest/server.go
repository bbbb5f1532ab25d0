package rest

import (
	"context"
	"net/http"

	"servdash/internal/domain"
	"servdash/internal/ports/input"
	"servdash/internal/ports/output"
)

// Translator localizes error messages for the caller's Accept-Language.
type Translator interface {
	output.T
	Match(acceptLanguage string) string
}

// Server is the REST adapter: it turns HTTP requests into use-case calls.
type Server struct {
	events       input.EventUseCase
	participants input.ParticipantUseCase
	reminders    input.ReminderUseCase
	profiles     input.ProfileUseCase
	auth         *Authenticator
	tr           Translator
	ping         func(context.Context) error
}

type Deps struct {
	Events       input.EventUseCase
	Participants input.ParticipantUseCase
	Reminders    input.ReminderUseCase
	Profiles     input.ProfileUseCase
	Auth         *Authenticator
	Translator   Translator
	// Ping backs /healthz. Nil reports healthy.
	Ping func(context.Context) error
}

func NewServer(d Deps) *Server {
	return &Server{
		events:       d.Events,
		participants: d.Participants,
		reminders:    d.Reminders,
		profiles:     d.Profiles,
		auth:         d.Auth,
		tr:           d.Translator,
		ping:         d.Ping,
	}
}

// kindRoute binds an event kind to its URL segment.
type kindRoute struct {
	kind   domain.EventKind
	plural string
}

var kindRoutes = []kindRoute{
	{domain.KindRaid, "raids"},
	{domain.KindIncursion, "incursions"},
	{domain.KindActivity, "activities"},
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)

	for _, kr := range kindRoutes {
		base := "/td2/" + kr.plural
		mux.HandleFunc("GET "+base, s.authed(s.listEvents(kr.kind)))
		mux.HandleFunc("POST "+base, s.admin(s.createEvent(kr.kind)))
		mux.HandleFunc("GET "+base+"/{id}", s.authed(s.getEvent(kr.kind)))
		mux.HandleFunc("PATCH "+base+"/{id}", s.admin(s.updateEvent(kr.kind)))
		mux.HandleFunc("DELETE "+base+"/{id}", s.admin(s.deleteEvent(kr.kind)))

		mux.HandleFunc("GET "+base+"/{id}/participants", s.authed(s.listParticipants(kr.kind)))
		mux.HandleFunc("POST "+base+"/{id}/participants", s.authed(s.addParticipant(kr.kind)))
		mux.HandleFunc("PATCH "+base+"/participants/{id}", s.authed(s.updateParticipant(kr.kind)))
		mux.HandleFunc("DELETE "+base+"/participants/{id}", s.authed(s.removeParticipant(kr.kind)))
	}
	// Raid participants are also reachable without the kind segment.
	mux.HandleFunc("PATCH /td2/participants/{id}", s.authed(s.updateParticipant(domain.KindRaid)))
	mux.HandleFunc("DELETE /td2/participants/{id}", s.authed(s.removeParticipant(domain.KindRaid)))

	mux.HandleFunc("GET /td2/activity-messages/{messageId}", s.authed(s.getEventByMessage(domain.KindActivity)))
	mux.HandleFunc("DELETE /td2/activity-messages/{messageId}", s.admin(s.deleteEventByMessage(domain.KindActivity)))

	mux.HandleFunc("GET /td2/reminders", s.authed(s.listReminders))
	mux.HandleFunc("POST /td2/reminders", s.authed(s.scheduleReminders))
	mux.HandleFunc("DELETE /td2/reminders/{id}", s.authed(s.deleteReminder))

	mux.HandleFunc("GET /td2/profiles/{discordId}", s.authed(s.getProfile))
	mux.HandleFunc("PUT /td2/profiles/{discordId}", s.authed(s.putProfile))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
