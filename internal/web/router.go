package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/uniquers/landing/internal/handlers"
	svc "github.com/uniquers/landing/internal/services"
)

// Router wires the public landing routes, the submission API, and the
// admin area. gdb may be nil when the process is running degraded; the
// admin pages then answer 503 while submissions keep flowing to the
// audit log.
func Router(leads *svc.Leads, gdb *gorm.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates("templates")

	// Public pages
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	r.Get("/", handlers.Home(tmpl))
	r.Get("/healthz", handlers.Health(leads))
	r.Get("/join", handlers.JoinForm(tmpl))
	r.Post("/join", handlers.JoinSubmit(leads))
	r.Get("/qr/join.png", handlers.JoinQR)

	// Submission API (the JS form and the Go client both post here)
	r.Post("/api/submit-form", handlers.SubmitForm(leads))

	// --- Admin routes (with login + guard) ---
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/login", handlers.AdminLoginForm(tmpl))
		ar.Post("/login", handlers.AdminLoginSubmit)
		ar.Post("/logout", handlers.AdminLogout)

		ar.Group(func(ag chi.Router) {
			ag.Use(handlers.RequireAdmin)
			ag.Get("/leads", handlers.AdminLeads(gdb, tmpl))
			ag.Get("/leads.csv", handlers.AdminLeadsCSV(gdb))
		})
	})

	return r
}

func mustParseTemplates(baseDir string) *template.Template {
	funcs := template.FuncMap{
		"year": func() string { return time.Now().Format("2006") },
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "layouts", "*.tmpl")))
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "partials", "*.tmpl")))
	return p
}
