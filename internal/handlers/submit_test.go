package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/uniquers/landing/internal/audit"
	"github.com/uniquers/landing/internal/db"
	"github.com/uniquers/landing/internal/models"
	svc "github.com/uniquers/landing/internal/services"
)

func testLeads(t *testing.T) (*svc.Leads, *gorm.DB) {
	t.Helper()
	dir := t.TempDir()
	gdb, err := db.Open(filepath.Join(dir, "handlers_test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	fallback := audit.New(filepath.Join(dir, "audit.jsonl"))
	t.Cleanup(func() { fallback.Close() })
	return svc.New(svc.NewGormSink(gdb), fallback, time.Second), gdb
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return rec, resp
}

func TestSubmitForm_OK(t *testing.T) {
	leads, gdb := testLeads(t)
	h := SubmitForm(leads)

	rec, resp := postJSON(t, h,
		`{"full_name":"Ada Lovelace","email":"ada@example.com","message":"Interested in analytics tooling"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !resp.Success || resp.Message == "" {
		t.Fatalf("response = %+v, want success with message", resp)
	}

	var sub models.Subscriber
	if err := gdb.First(&sub).Error; err != nil {
		t.Fatalf("no persisted subscriber: %v", err)
	}
	if sub.FullName != "Ada Lovelace" || sub.Email != "ada@example.com" ||
		sub.Message != "Interested in analytics tooling" {
		t.Errorf("persisted %+v", sub)
	}
	if sub.KeepUpdated {
		t.Error("keep_updated should default to false")
	}
}

func TestSubmitForm_AliasedFields(t *testing.T) {
	leads, gdb := testLeads(t)
	h := SubmitForm(leads)

	rec, resp := postJSON(t, h,
		`{"fullName":"Grace Hopper","email":"grace@example.com","interests":"compilers","keepUpdated":true}`)
	if rec.Code != http.StatusOK || !resp.Success {
		t.Fatalf("status = %d, resp = %+v", rec.Code, resp)
	}

	var sub models.Subscriber
	if err := gdb.First(&sub).Error; err != nil {
		t.Fatalf("no persisted subscriber: %v", err)
	}
	if sub.FullName != "Grace Hopper" || sub.Message != "compilers" || !sub.KeepUpdated {
		t.Errorf("aliases not normalized: %+v", sub)
	}
}

func TestSubmitForm_MissingFields(t *testing.T) {
	leads, gdb := testLeads(t)
	h := SubmitForm(leads)

	cases := []string{
		`{"full_name":"","email":"a@b.com"}`,
		`{"full_name":"   ","email":"a@b.com"}`,
		`{"email":"a@b.com"}`,
		`{"full_name":"Ada"}`,
		`{"full_name":"Ada","email":""}`,
	}
	for _, body := range cases {
		rec, resp := postJSON(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		if resp.Success {
			t.Errorf("body %s: success flag should be false", body)
		}
	}

	var count int64
	gdb.Model(&models.Subscriber{}).Count(&count)
	if count != 0 {
		t.Errorf("%d rows persisted from invalid payloads", count)
	}
}

func TestSubmitForm_InvalidEmail(t *testing.T) {
	leads, _ := testLeads(t)
	rec, resp := postJSON(t, SubmitForm(leads), `{"full_name":"Ada","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest || resp.Success {
		t.Fatalf("status = %d, resp = %+v", rec.Code, resp)
	}
}

func TestSubmitForm_MalformedBody(t *testing.T) {
	leads, _ := testLeads(t)
	rec, resp := postJSON(t, SubmitForm(leads), `{broken`)
	if rec.Code != http.StatusBadRequest || resp.Success {
		t.Fatalf("status = %d, resp = %+v", rec.Code, resp)
	}
}

// A backend outage must not bounce the lead: the endpoint still answers
// success and the submission lands in the audit log.
func TestSubmitForm_BackendOutageStillSucceeds(t *testing.T) {
	dir := t.TempDir()
	gdb, err := db.Open(filepath.Join(dir, "outage_test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	auditPath := filepath.Join(dir, "audit.jsonl")
	fallback := audit.New(auditPath)
	defer fallback.Close()
	leads := svc.New(svc.NewGormSink(gdb), fallback, time.Second)

	// Simulate the outage by closing the pool under the sink.
	sqlDB, _ := gdb.DB()
	sqlDB.Close()

	rec, resp := postJSON(t, SubmitForm(leads),
		`{"full_name":"Ada Lovelace","email":"ada@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite outage", rec.Code)
	}
	if !resp.Success {
		t.Fatalf("response = %+v, want success despite outage", resp)
	}

	if fi, err := os.Stat(auditPath); err != nil || fi.Size() == 0 {
		t.Fatalf("no audit fallback record (err=%v)", err)
	}
}
