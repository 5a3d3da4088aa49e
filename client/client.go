// Package client is a programmatic front end for the waitlist submission
// API: the same collect → validate → submit → settle cycle the landing
// page form runs, usable from Go tools and tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"
)

// State is the phase of the form lifecycle. Exactly one is active at a
// time.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Category is the user-facing bucket every lower-level failure collapses
// into before display.
type Category string

const (
	CategoryConnection   Category = "connection problem"
	CategoryInvalidInput Category = "invalid input"
	CategoryServer       Category = "server error"
)

// ValidationError is a local pre-flight failure; it never causes a network
// request.
type ValidationError struct {
	Field  string
	Reason string // "required" or "invalid_format"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrBusy is returned when Submit is called while a request is already in
// flight.
var ErrBusy = errors.New("submission already in flight")

// Form holds the field values. Optional fields may stay empty; the request
// body always carries the full schema so the server sees a stable shape.
type Form struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	TelegramHandle string `json:"telegram_handle"`
	Message        string `json:"message"`
	KeepUpdated    bool   `json:"keep_updated"`
}

// Controller drives one form instance through
// editing → submitting → submitted/failed. Failed submissions keep their
// field values so the caller can correct and retry; success clears them.
type Controller struct {
	endpoint string
	httpc    *http.Client
	spool    string // optional JSONL file for network-failed submissions

	mu       sync.Mutex
	state    State
	form     Form
	lastErr  string
	category Category
}

type Option func(*Controller)

// WithHTTPClient substitutes the transport (tests, custom timeouts).
func WithHTTPClient(c *http.Client) Option {
	return func(ctl *Controller) { ctl.httpc = c }
}

// WithSpool keeps a local copy of submissions that failed at the network
// level, one JSON object per line. Nothing drains it automatically; it
// exists so a lost lead is still visible to the operator.
func WithSpool(path string) Option {
	return func(ctl *Controller) { ctl.spool = path }
}

func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 15 * time.Second},
		state:    StateEditing,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm replaces the field values. Ignored while a request is in flight.
func (c *Controller) SetForm(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return
	}
	c.form = f
}

// LastError returns the display message and category of the most recent
// failure.
func (c *Controller) LastError() (string, Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr, c.category
}

// Reset returns a submitted form to editing ("submit another").
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitted {
		c.state = StateEditing
	}
}

// Validate runs the pre-flight checks without touching the network.
func (f Form) Validate() error {
	if strings.TrimSpace(f.FullName) == "" {
		return &ValidationError{Field: "full_name", Reason: "required"}
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if !reEmail.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "invalid_format"}
	}
	return nil
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit runs one editing/failed → submitting transition. Validation
// failure keeps the controller in its current state and issues no request.
// Exactly one request goes out per successful guard pass; there is no
// automatic retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrBusy
	}
	form := c.form
	if err := form.Validate(); err != nil {
		c.lastErr = err.Error()
		c.category = CategoryInvalidInput
		c.mu.Unlock()
		return err
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	ok, msg, category, err := c.post(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.state = StateSubmitted
		c.form = Form{}
		c.lastErr = ""
		c.category = ""
		return nil
	}
	c.state = StateFailed
	c.lastErr = msg
	c.category = category
	return err
}

func (c *Controller) post(ctx context.Context, form Form) (ok bool, msg string, cat Category, err error) {
	body, err := json.Marshal(form)
	if err != nil {
		return false, string(CategoryServer), CategoryServer, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, string(CategoryServer), CategoryServer, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.spoolWrite(form)
		return false, string(CategoryConnection), CategoryConnection, err
	}
	defer resp.Body.Close()

	var parsed apiResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	success := resp.StatusCode >= 200 && resp.StatusCode < 300 &&
		decodeErr == nil && parsed.Success
	if success {
		return true, parsed.Message, "", nil
	}

	cat = CategoryServer
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		cat = CategoryInvalidInput
	}
	msg = parsed.Message
	if msg == "" {
		msg = string(cat)
	}
	return false, msg, cat, fmt.Errorf("submission rejected: status %d", resp.StatusCode)
}

// spoolWrite appends the form to the local spool. Best effort: a spool
// failure must not mask the original network error.
func (c *Controller) spoolWrite(form Form) {
	if c.spool == "" {
		return
	}
	f, err := os.OpenFile(c.spool, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	entry := struct {
		FailedAt time.Time `json:"failed_at"`
		Form     Form      `json:"form"`
	}{FailedAt: time.Now().UTC(), Form: form}
	if b, err := json.Marshal(entry); err == nil {
		_, _ = f.Write(append(b, '\n'))
	}
}

// Same shape check the landing form ships: local@domain.tld, no spaces.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
