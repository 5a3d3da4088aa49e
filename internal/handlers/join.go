package handlers

import (
	"errors"
	"html/template"
	"net/http"

	svc "github.com/uniquers/landing/internal/services"
)

// JoinForm renders the no-JS join form. A completed submission comes back
// here with ?ok=joined and renders the thank-you state instead.
func JoinForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := t.Clone()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if _, err := view.ParseFiles("templates/pages/join.tmpl"); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = view.ExecuteTemplate(w, "join.tmpl", map[string]any{
			"Title":  "Join Uniquers Today",
			"Joined": r.URL.Query().Get("ok") == "joined",
			"Flash":  MakeFlash(r, "", ""),
			// Failed validation redirects back with the entered values so
			// the visitor can correct and resubmit.
			"FullName": r.URL.Query().Get("full_name"),
			"Email":    r.URL.Query().Get("email"),
			"Phone":    r.URL.Query().Get("phone"),
			"Company":  r.URL.Query().Get("company"),
			"Telegram": r.URL.Query().Get("telegram"),
			"Message":  r.URL.Query().Get("message"),
		})
	}
}

// JoinSubmit handles the form-encoded POST. Same pipeline as the JSON API;
// only the response shape differs (redirect + flash instead of JSON).
func JoinSubmit(leads *svc.Leads) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		p := svc.Payload{
			FullName:       r.FormValue("full_name"),
			Email:          r.FormValue("email"),
			Phone:          r.FormValue("phone"),
			Company:        r.FormValue("company"),
			TelegramHandle: r.FormValue("telegram"),
			Message:        r.FormValue("message"),
			KeepUpdated:    r.FormValue("keep_updated") != "",
		}

		_, err := leads.Save(r.Context(), p)
		if err == nil {
			http.Redirect(w, r, "/join?ok=joined", http.StatusSeeOther)
			return
		}

		key := "server_error"
		switch {
		case errors.Is(err, svc.ErrMissingName):
			key = "missing_name"
		case errors.Is(err, svc.ErrMissingEmail):
			key = "missing_email"
		case errors.Is(err, svc.ErrInvalidEmail):
			key = "invalid_email"
		}

		q := r.Form
		q.Set("error", key)
		q.Del("keep_updated")
		http.Redirect(w, r, "/join?"+q.Encode(), http.StatusSeeOther)
	}
}
