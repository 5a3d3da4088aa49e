package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/uniquers/landing/internal/audit"
	"github.com/uniquers/landing/internal/models"
)

// Validation failures surfaced to the caller; handlers map these to 400s.
var (
	ErrMissingName  = errors.New("full name is required")
	ErrMissingEmail = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// ErrInsert is a genuine insert failure (data-level, not infrastructure);
// handlers map it to a 500.
var ErrInsert = errors.New("failed to save subscriber")

// Result reports where a submission ended up. Degraded means the primary
// store was unreachable and the lead went to the audit log instead; the
// caller still reports success because losing a lead to a transient outage
// costs more than a delayed row.
type Result struct {
	Subscriber *models.Subscriber
	Degraded   bool
	AuditRef   string
}

// Leads runs the submission pipeline: normalize, validate, insert with a
// bounded timeout, fall back to the audit log when the backend is down.
type Leads struct {
	sink     Sink
	fallback *audit.Log
	timeout  time.Duration
}

// New wires the pipeline. sink may be nil: the service then runs in
// degraded mode from the start and every accepted lead goes to the audit
// log (the process came up without a database).
func New(sink Sink, fallback *audit.Log, timeout time.Duration) *Leads {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Leads{sink: sink, fallback: fallback, timeout: timeout}
}

// Degraded reports whether the service has no primary store at all.
func (s *Leads) Degraded() bool { return s.sink == nil }

// Save validates p and persists it. Validation errors come back as
// ErrMissing*/ErrInvalidEmail; infrastructure trouble is absorbed into the
// fallback channel and reported via Result.Degraded.
func (s *Leads) Save(ctx context.Context, p Payload) (Result, error) {
	name := strings.TrimSpace(p.FullName)
	if name == "" {
		return Result{}, ErrMissingName
	}
	email, ok := NormEmail(p.Email)
	if email == "" {
		return Result{}, ErrMissingEmail
	}
	if !ok {
		return Result{}, ErrInvalidEmail
	}

	sub := &models.Subscriber{
		FullName:       name,
		Email:          email,
		Phone:          strings.TrimSpace(p.Phone),
		Company:        strings.TrimSpace(p.Company),
		TelegramHandle: NormTelegram(p.TelegramHandle),
		Message:        strings.TrimSpace(p.Message),
		KeepUpdated:    p.KeepUpdated,
	}

	if s.sink == nil {
		return s.degrade(sub, errors.New("no primary store configured"))
	}

	ictx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	err := s.sink.Insert(ictx, sub)
	if err == nil {
		return Result{Subscriber: sub}, nil
	}
	if errors.Is(err, ErrBackendUnavailable) {
		return s.degrade(sub, err)
	}
	log.Printf("subscriber insert failed: %v", err)
	return Result{}, ErrInsert
}

func (s *Leads) degrade(sub *models.Subscriber, cause error) (Result, error) {
	ref, err := s.fallback.Record(sub)
	if err != nil {
		// Nowhere durable to put the lead; this one really is lost.
		log.Printf("audit fallback failed: %v (original: %v)", err, cause)
		return Result{}, ErrInsert
	}
	log.Printf("backend unavailable, lead captured to audit log ref=%s: %v", ref, cause)
	return Result{Subscriber: sub, Degraded: true, AuditRef: ref}, nil
}
