package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/songbird/backend/internal/contracts"
	"github.com/songbird/backend/internal/engine/calendar"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// resolveToday resolves the effective local date for a request. The
// client's ?today= hint is authoritative when present, since only the
// client knows its timezone; the server clock is the fallback.
func resolveToday(r *http.Request) (contracts.DayKey, error) {
	return calendar.Resolve(time.Now().UTC(), r.URL.Query().Get("today"))
}
