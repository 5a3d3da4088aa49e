package handlers

import "time"

// Leads come from anywhere, so display formatting stays in UTC.

// Date-only friendly string, e.g. "Mon, 02 Jan 2006"
func fmtDate(d time.Time) string {
	return d.UTC().Format("Mon, 02 Jan 2006")
}

// Minute-precision string for the admin list, e.g. "2006-01-02 15:04"
func fmtDateTime(d time.Time) string {
	return d.UTC().Format("2006-01-02 15:04")
}
