package resource

import (
	"strings"
	"testing"
)

// auditRecord captures a single call to the audit collaborator.
type auditRecord struct {
	resourceType string
	message      string
	config       map[string]any
}

// fakeAudit records audit calls for assertions.
type fakeAudit struct {
	records []auditRecord
}

func (f *fakeAudit) Log(resourceType, message string, config map[string]any) {
	f.records = append(f.records, auditRecord{resourceType, message, config})
}

func (f *fakeAudit) last() auditRecord {
	return f.records[len(f.records)-1]
}

func TestNew_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewAppService(name, "python", "EastUS", 1, nil)
		if err == nil {
			t.Fatalf("Expected error for name %q, got none", name)
		}
		if !IsInvalidConfig(err) {
			t.Errorf("Expected INVALID_CONFIG for name %q, got: %v", name, err)
		}
	}
}

func TestNew_TrimsName(t *testing.T) {
	r, err := NewAppService("  svc1  ", "python", "EastUS", 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if r.Name() != "svc1" {
		t.Errorf("Expected trimmed name svc1, got %q", r.Name())
	}
}

func TestNew_InvalidSpecLeavesNothingObservable(t *testing.T) {
	audit := &fakeAudit{}
	r, err := NewAppService("svc1", "java", "EastUS", 1, audit)
	if err == nil {
		t.Fatal("Expected error for invalid runtime, got none")
	}
	if r != nil {
		t.Error("Expected nil resource on validation failure")
	}
	if len(audit.records) != 0 {
		t.Errorf("Expected no audit records on failed construction, got %d", len(audit.records))
	}
}

func TestNew_InitialStateAndCreatedLog(t *testing.T) {
	audit := &fakeAudit{}
	r, err := NewAppService("svc1", "python", "WestEurope", 2, audit)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if r.State() != StateCreated {
		t.Errorf("Expected initial state Created, got %s", r.State())
	}
	if r.IsDeleted() {
		t.Error("Expected new resource to not be deleted")
	}
	if r.ID() == "" {
		t.Error("Expected a non-empty id")
	}
	if r.CreatedAt().IsZero() {
		t.Error("Expected a creation timestamp")
	}

	if len(audit.records) != 1 {
		t.Fatalf("Expected 1 audit record, got %d", len(audit.records))
	}
	rec := audit.records[0]
	if rec.resourceType != TypeAppService || rec.message != "created" {
		t.Errorf("Expected AppService/created record, got %s/%s", rec.resourceType, rec.message)
	}
}

func TestResource_Lifecycle_AppServiceScenario(t *testing.T) {
	audit := &fakeAudit{}
	r, err := NewAppService("svc1", "python", "WestEurope", 2, audit)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Created -> Started
	if err := r.Start(); err != nil {
		t.Fatalf("Expected start to succeed, got: %v", err)
	}
	if r.State() != StateStarted {
		t.Errorf("Expected Started, got %s", r.State())
	}
	if got := audit.last().message; got != "started in WestEurope" {
		t.Errorf("Expected started message with region, got %q", got)
	}

	// Delete from Started must fail and leave state untouched.
	err = r.Delete()
	if err == nil {
		t.Fatal("Expected delete from Started to fail")
	}
	if !IsInvalidTransition(err) {
		t.Errorf("Expected INVALID_TRANSITION, got: %v", err)
	}
	if r.State() != StateStarted || r.IsDeleted() {
		t.Errorf("Expected state unchanged on failure, got state=%s deleted=%v", r.State(), r.IsDeleted())
	}

	// Started -> Stopped
	if err := r.Stop(); err != nil {
		t.Fatalf("Expected stop to succeed, got: %v", err)
	}
	if got := audit.last().message; got != "stopped" {
		t.Errorf("Expected stopped message, got %q", got)
	}

	// Stopped -> Deleted (soft)
	if err := r.Delete(); err != nil {
		t.Fatalf("Expected delete to succeed, got: %v", err)
	}
	if r.State() != StateDeleted {
		t.Errorf("Expected Deleted, got %s", r.State())
	}
	if !r.IsDeleted() {
		t.Error("Expected deleted flag set")
	}
	if got := audit.last().message; got != "marked as deleted" {
		t.Errorf("Expected deletion message, got %q", got)
	}

	// Deleted absorbs everything.
	for _, op := range []func() error{r.Start, r.Stop, r.Delete} {
		if err := op(); err == nil || !IsInvalidTransition(err) {
			t.Errorf("Expected INVALID_TRANSITION on deleted resource, got: %v", err)
		}
	}
}

func TestResource_DeleteUnused(t *testing.T) {
	audit := &fakeAudit{}
	r, err := NewCacheDB("cache1", 3600, 512, "LRU", audit)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := r.Delete(); err != nil {
		t.Fatalf("Expected delete from Created to succeed, got: %v", err)
	}
	if got := audit.last().message; got != "marked as deleted (unused)" {
		t.Errorf("Expected unused deletion message, got %q", got)
	}
	if !r.IsDeleted() || r.State() != StateDeleted {
		t.Errorf("Expected soft-deleted resource, got state=%s deleted=%v", r.State(), r.IsDeleted())
	}
}

func TestResource_RestartUsesRegionPlaceholder(t *testing.T) {
	audit := &fakeAudit{}
	r, err := NewCacheDB("cache1", 3600, 512, "LRU", audit)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// CacheDB has no region field; the log must fall back to a placeholder.
	if err := r.Start(); err != nil {
		t.Fatalf("Expected start to succeed, got: %v", err)
	}
	if got := audit.last().message; got != "started in unknown region" {
		t.Errorf("Expected placeholder region message, got %q", got)
	}
}

func TestResource_CreatedAtStable(t *testing.T) {
	r, err := NewAppService("svc1", "python", "EastUS", 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	created := r.CreatedAt()
	if err := r.Start(); err != nil {
		t.Fatalf("Expected start to succeed, got: %v", err)
	}
	if !r.CreatedAt().Equal(created) {
		t.Error("Expected created_at to never change after construction")
	}
}

func TestResource_FailureErrorCarriesResourceName(t *testing.T) {
	r, err := NewAppService("svc1", "python", "EastUS", 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	err = r.Stop()
	if err == nil {
		t.Fatal("Expected stop from Created to fail")
	}
	if !strings.Contains(err.Error(), "svc1") {
		t.Errorf("Expected error to carry resource name, got %q", err)
	}
}

func TestResource_String(t *testing.T) {
	r, err := NewAppService("svc1", "python", "EastUS", 1, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	got := r.String()
	if !strings.Contains(got, "AppService") || !strings.Contains(got, "svc1") || !strings.Contains(got, "Created") {
		t.Errorf("Expected display form with type, name and state, got %q", got)
	}
}
