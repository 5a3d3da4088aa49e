// internal/handlers/flash.go
package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"joined": "Thank you for subscribing!",
}

var errText = map[string]string{
	"missing_name":  "Full name is required.",
	"missing_email": "Email is required.",
	"invalid_email": "Please enter a valid email address.",
	"server_error":  "Failed to save your information. Please try again.",
}

// MakeFlash reads query params and/or explicit strings to build a Flash.
// Supports both new (?ok= / ?error=) and legacy (?msg= / ?err=) parameters.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	q := r.URL.Query()

	errRaw := strings.TrimSpace(q.Get("error"))
	if errRaw == "" {
		errRaw = strings.TrimSpace(q.Get("err"))
	}
	okRaw := strings.TrimSpace(q.Get("ok"))
	if okRaw == "" {
		okRaw = strings.TrimSpace(q.Get("msg"))
	}

	if errRaw != "" {
		key := strings.ToLower(errRaw)
		if t, ok := errText[key]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: errRaw}
	}
	if okRaw != "" {
		key := strings.ToLower(okRaw)
		if t, ok := okText[key]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: okRaw}
	}

	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
