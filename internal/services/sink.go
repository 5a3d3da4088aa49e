package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/uniquers/landing/internal/models"
)

// ErrBackendUnavailable marks an insert failure caused by infrastructure
// (connection gone, timeout, store unreachable) rather than by the data.
// Saves hitting it degrade to the audit log instead of failing the request.
var ErrBackendUnavailable = errors.New("persistence backend unavailable")

// Sink is the insert contract every persistence backend satisfies: one row
// per accepted submission, generated fields filled in on success.
type Sink interface {
	Insert(ctx context.Context, sub *models.Subscriber) error
}

// GormSink writes subscribers through a GORM handle (SQLite in production).
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (g *GormSink) Insert(ctx context.Context, sub *models.Subscriber) error {
	err := g.db.WithContext(ctx).Create(sub).Error
	if err == nil {
		return nil
	}
	if isInfraErr(err) {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return err
}

// isInfraErr separates "the store is unreachable" from "the store rejected
// this row". Constraint violations stay data errors.
func isInfraErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr:
			return true
		}
		return false
	}
	// database/sql has no sentinel for a closed pool.
	return strings.Contains(err.Error(), "database is closed")
}

// RestSink posts one JSON row per submission to a managed table endpoint
// (Supabase-style PostgREST: POST <url>, apikey header). It satisfies the
// same contract as GormSink minus generated-field readback.
type RestSink struct {
	url    string
	apiKey string
	httpc  *http.Client
}

func NewRestSink(url, apiKey string) *RestSink {
	return &RestSink{url: url, apiKey: apiKey, httpc: &http.Client{}}
}

func (s *RestSink) Insert(ctx context.Context, sub *models.Subscriber) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: remote returned %d", ErrBackendUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("remote rejected insert: %d", resp.StatusCode)
	}
}
