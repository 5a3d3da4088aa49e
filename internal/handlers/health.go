package handlers

import (
	"encoding/json"
	"net/http"

	svc "github.com/uniquers/landing/internal/services"
)

// Health reports liveness plus whether the service is running without its
// primary store (leads still accepted, routed to the audit log).
func Health(leads *svc.Leads) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"degraded": leads.Degraded(),
		})
	}
}
