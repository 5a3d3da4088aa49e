package handlers

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/uniquers/landing/internal/models"
)

type leadRow struct {
	models.Subscriber
	CreatedStr string
}

type leadsPageVM struct {
	Title     string
	Rows      []leadRow
	Filters   leadFilters
	HasResult bool
	Total     int
}

type leadFilters struct {
	From    string
	To      string
	Updated string
	Q       string
}

func parseDate(s string, def time.Time) time.Time {
	if s == "" {
		return def
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return def
	}
	return t
}

func leadsQuery(gdb *gorm.DB, f leadFilters) *gorm.DB {
	now := time.Now()
	from := parseDate(f.From, now.AddDate(0, -3, 0))
	to := parseDate(f.To, now).AddDate(0, 0, 1) // inclusive end date

	q := gdb.Model(&models.Subscriber{}).
		Where("created_at BETWEEN ? AND ?", from, to)

	if f.Updated == "1" {
		q = q.Where("keep_updated = ?", true)
	}

	if f.Q != "" {
		like := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where(`
			LOWER(full_name)       LIKE ? OR
			LOWER(email)           LIKE ? OR
			LOWER(company)         LIKE ? OR
			LOWER(telegram_handle) LIKE ? OR
			LOWER(message)         LIKE ?
		`, like, like, like, like, like)
	}
	return q
}

func readLeadFilters(r *http.Request) leadFilters {
	return leadFilters{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		Updated: r.URL.Query().Get("updated"),
		Q:       strings.TrimSpace(r.URL.Query().Get("q")),
	}
}

// ---------- Admin Leads (HTML) ----------
func AdminLeads(gdb *gorm.DB, t *template.Template) http.HandlerFunc {
	view := template.Must(t.Clone())
	template.Must(view.ParseFiles("templates/pages/admin/leads.tmpl"))

	return func(w http.ResponseWriter, r *http.Request) {
		if gdb == nil {
			http.Error(w, "database unavailable; leads are in the audit log", http.StatusServiceUnavailable)
			return
		}

		f := readLeadFilters(r)

		var subs []models.Subscriber
		if err := leadsQuery(gdb, f).
			Order("created_at DESC, id DESC").
			Find(&subs).Error; err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		rows := make([]leadRow, 0, len(subs))
		for _, s := range subs {
			rows = append(rows, leadRow{Subscriber: s, CreatedStr: fmtDateTime(s.CreatedAt)})
		}

		vm := leadsPageVM{
			Title:     "Admin • Leads",
			Rows:      rows,
			Filters:   f,
			HasResult: len(rows) > 0,
			Total:     len(rows),
		}

		if err := view.ExecuteTemplate(w, "leads.tmpl", vm); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	}
}

// ---------- Admin Leads (CSV export) ----------
func AdminLeadsCSV(gdb *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gdb == nil {
			http.Error(w, "database unavailable; leads are in the audit log", http.StatusServiceUnavailable)
			return
		}

		f := readLeadFilters(r)

		var subs []models.Subscriber
		if err := leadsQuery(gdb, f).
			Order("created_at DESC, id DESC").
			Find(&subs).Error; err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)

		cw := csv.NewWriter(w)
		defer cw.Flush()

		_ = cw.Write([]string{
			"ID", "Created", "Full Name", "Email", "Phone", "Company",
			"Telegram", "Message", "Keep Updated",
		})

		for _, s := range subs {
			updated := "no"
			if s.KeepUpdated {
				updated = "yes"
			}
			_ = cw.Write([]string{
				fmt.Sprintf("%d", s.ID),
				s.CreatedAt.UTC().Format("2006-01-02 15:04"),
				s.FullName,
				s.Email,
				s.Phone,
				s.Company,
				s.TelegramHandle,
				s.Message,
				updated,
			})
		}
	}
}
