package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"servdash/internal/domain"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

var errBadJSON = errors.New("corps JSON invalide")

var statusByCode = map[string]int{
	"event_not_found":       http.StatusNotFound,
	"server_not_found":      http.StatusNotFound,
	"participant_not_found": http.StatusNotFound,
	"reminder_not_found":    http.StatusNotFound,
	"profile_not_found":     http.StatusNotFound,
	"capacity_exceeded":     http.StatusBadRequest,
	"cannot_reduce_slots":   http.StatusBadRequest,
	"validation":            http.StatusBadRequest,
	"bad_json":              http.StatusBadRequest,
	"participant_exists":    http.StatusConflict,
	"custom_id_taken":       http.StatusConflict,
	"unauthorized":          http.StatusUnauthorized,
	"forbidden":             http.StatusForbidden,
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ HTTP: encodage de la réponse: %v", err)
	}
}

// writeError maps err to a status and a localized message. Unknown errors
// are logged and answered with a bare 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	if code == "" && errors.Is(err, errBadJSON) {
		code = "bad_json"
	}
	status, ok := statusByCode[code]
	if !ok {
		log.Printf("❌ HTTP %s %s: %v", r.Method, r.URL.Path, err)
		code, status = "internal", http.StatusInternalServerError
	}

	var data map[string]any
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		data = map[string]any{"Field": verr.Field, "Reason": verr.Reason}
	}
	locale := s.tr.Match(r.Header.Get("Accept-Language"))
	writeJSON(w, status, errorBody{
		Error:   code,
		Message: s.tr.T(locale, "error."+code, data),
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.Join(errBadJSON, err)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return parseUUID(name, r.PathValue(name))
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Invalid(field, "UUID attendu")
	}
	return id, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(name, "identifiant numérique attendu")
	}
	return id, nil
}
