// Package api serves the liveness probe hosting platforms poll.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

var startedAt = time.Now()

// SetupRouter builds the health router. No state, no auth: everything this
// process owns lives in the remote backend.
func SetupRouter() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", rootHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)

	return r
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{
		"service": "bot-discord",
		"docs":    "community points bot, see /healthz",
	})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}
