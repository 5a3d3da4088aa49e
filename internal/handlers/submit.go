package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	svc "github.com/uniquers/landing/internal/services"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// SubmitForm handles POST /api/submit-form. Backend outages never bounce a
// lead: the service degrades to the audit log and we still answer success.
func SubmitForm(leads *svc.Leads) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.DecodePayload(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Invalid request body."})
			return
		}

		_, err = leads.Save(r.Context(), p)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Thank you for subscribing!"})
		case errors.Is(err, svc.ErrMissingName), errors.Is(err, svc.ErrMissingEmail):
			writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Name and email are required."})
		case errors.Is(err, svc.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Please enter a valid email address."})
		default:
			writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Failed to save your information."})
		}
	}
}
