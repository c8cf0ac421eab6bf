package stores

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "audit.db")
	store, err := NewSQLiteStore(Config{Path: dbPath})
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}

	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return store
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := NewSQLiteStore(Config{}); err == nil {
		t.Fatal("NewSQLiteStore() with empty path should fail")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestAppendAndListAudit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	records := []*AuditRecord{
		{ID: "evt-1", ResourceType: "AppService", Message: "created", Config: `{"runtime":"python"}`, CreatedAt: base},
		{ID: "evt-2", ResourceType: "AppService", Message: "started in WestEurope", Config: `{"runtime":"python"}`, CreatedAt: base.Add(time.Second)},
		{ID: "evt-3", ResourceType: "CacheDB", Message: "created", Config: `{"ttl_seconds":300}`, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, rec := range records {
		if err := store.AppendAudit(ctx, rec); err != nil {
			t.Fatalf("AppendAudit(%s) error = %v", rec.ID, err)
		}
	}

	got, err := store.ListAudit(ctx, "", 0)
	if err != nil {
		t.Fatalf("ListAudit() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListAudit() returned %d records, want 3", len(got))
	}
	// Most recent first.
	if got[0].ID != "evt-3" || got[2].ID != "evt-1" {
		t.Errorf("ListAudit() order = [%s %s %s], want newest first", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[2].Message != "created" || got[2].Config != `{"runtime":"python"}` {
		t.Errorf("record round-trip mismatch: %+v", got[2])
	}
}

func TestListAuditFiltersByType(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []*AuditRecord{
		{ID: "a", ResourceType: "AppService", Message: "created", Config: "{}", CreatedAt: now},
		{ID: "b", ResourceType: "StorageAccount", Message: "created", Config: "{}", CreatedAt: now.Add(time.Second)},
		{ID: "c", ResourceType: "AppService", Message: "stopped", Config: "{}", CreatedAt: now.Add(2 * time.Second)},
	}
	for _, rec := range seed {
		if err := store.AppendAudit(ctx, rec); err != nil {
			t.Fatalf("AppendAudit(%s) error = %v", rec.ID, err)
		}
	}

	got, err := store.ListAudit(ctx, "AppService", 0)
	if err != nil {
		t.Fatalf("ListAudit(AppService) error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListAudit(AppService) returned %d records, want 2", len(got))
	}
	for _, rec := range got {
		if rec.ResourceType != "AppService" {
			t.Errorf("unexpected resource type %q", rec.ResourceType)
		}
	}
}

func TestListAuditLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		rec := &AuditRecord{
			ID:           string(rune('a' + i)),
			ResourceType: "CacheDB",
			Message:      "created",
			Config:       "{}",
			CreatedAt:    now.Add(time.Duration(i) * time.Second),
		}
		if err := store.AppendAudit(ctx, rec); err != nil {
			t.Fatalf("AppendAudit() error = %v", err)
		}
	}

	got, err := store.ListAudit(ctx, "CacheDB", 2)
	if err != nil {
		t.Fatalf("ListAudit() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListAudit() returned %d records, want 2", len(got))
	}
	if got[0].ID != "e" || got[1].ID != "d" {
		t.Errorf("ListAudit() limit order = [%s %s], want [e d]", got[0].ID, got[1].ID)
	}
}

func TestCountAudit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.CountAudit(ctx, "")
	if err != nil {
		t.Fatalf("CountAudit() error = %v", err)
	}
	if count != 0 {
		t.Fatalf("CountAudit() on empty store = %d, want 0", count)
	}

	now := time.Now().UTC()
	seed := []*AuditRecord{
		{ID: "a", ResourceType: "AppService", Message: "created", Config: "{}", CreatedAt: now},
		{ID: "b", ResourceType: "AppService", Message: "started in EastUS", Config: "{}", CreatedAt: now},
		{ID: "c", ResourceType: "StorageAccount", Message: "created", Config: "{}", CreatedAt: now},
	}
	for _, rec := range seed {
		if err := store.AppendAudit(ctx, rec); err != nil {
			t.Fatalf("AppendAudit(%s) error = %v", rec.ID, err)
		}
	}

	count, err = store.CountAudit(ctx, "AppService")
	if err != nil {
		t.Fatalf("CountAudit(AppService) error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountAudit(AppService) = %d, want 2", count)
	}

	count, err = store.CountAudit(ctx, "")
	if err != nil {
		t.Fatalf("CountAudit() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountAudit() = %d, want 3", count)
	}
}
