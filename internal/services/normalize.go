package services

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"
)

// Payload is the canonical submission shape. The landing page shipped
// several form revisions with drifting field names (name/fullName,
// interests/reason/message, updates/newsletter/subscribed); aliasing is
// resolved at the boundary so everything past DecodePayload speaks one
// schema.
type Payload struct {
	FullName       string
	Email          string
	Phone          string
	Company        string
	TelegramHandle string
	Message        string
	KeepUpdated    bool
}

type rawPayload struct {
	FullName  string `json:"full_name"`
	FullNameA string `json:"fullName"`
	Name      string `json:"name"`

	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`

	Telegram  string `json:"telegram"`
	TelegramH string `json:"telegram_handle"`

	Message   string `json:"message"`
	Interests string `json:"interests"`
	Reason    string `json:"reason"`

	KeepUpdated *bool `json:"keep_updated"`
	KeepUpdateA *bool `json:"keepUpdated"`
	Updates     *bool `json:"updates"`
	Newsletter  *bool `json:"newsletter"`
	Subscribed  *bool `json:"subscribed"`
}

// DecodePayload reads a JSON body and normalizes aliased field names to the
// canonical schema. Unknown fields are ignored.
func DecodePayload(r io.Reader) (Payload, error) {
	var raw rawPayload
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Payload{}, err
	}

	p := Payload{
		FullName:       firstNonEmpty(raw.FullName, raw.FullNameA, raw.Name),
		Email:          raw.Email,
		Phone:          strings.TrimSpace(raw.Phone),
		Company:        strings.TrimSpace(raw.Company),
		TelegramHandle: NormTelegram(firstNonEmpty(raw.TelegramH, raw.Telegram)),
		Message:        firstNonEmpty(raw.Message, raw.Interests, raw.Reason),
	}
	for _, b := range []*bool{raw.KeepUpdated, raw.KeepUpdateA, raw.Updates, raw.Newsletter, raw.Subscribed} {
		if b != nil {
			p.KeepUpdated = *b
			break
		}
	}
	return p, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// One or more non-space non-@ chars, @, same, a dot, then non-space.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormEmail lowercases and trims. ok is false only when a non-empty value
// fails the shape check; empty stays empty so callers decide if it is
// required.
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(strings.ToLower(s))
	if e == "" {
		return "", true
	}
	return e, reEmail.MatchString(e)
}

// NormTelegram strips the decorations people paste along with a handle:
// @name, t.me/name, https://t.me/name all normalize to "name".
func NormTelegram(s string) string {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "https://")
	h = strings.TrimPrefix(h, "http://")
	h = strings.TrimPrefix(h, "t.me/")
	h = strings.TrimPrefix(h, "@")
	return h
}
