package registry

import (
	"testing"

	"github.com/cloudconnect/cloudconnect/pkg/resource"
)

func newTestFactory() *Factory {
	return NewFactory(NewWithBuilders(resource.Builtins(nil)))
}

func TestFactory_Create(t *testing.T) {
	f := newTestFactory()

	r, err := f.Create("AppService", "svc1", map[string]any{
		"runtime":       "python",
		"region":        "WestEurope",
		"replica_count": 2,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if r.Name() != "svc1" {
		t.Errorf("Expected name svc1, got %q", r.Name())
	}
	if r.State() != resource.StateCreated {
		t.Errorf("Expected initial state Created, got %s", r.State())
	}

	// Round-trip: the config view reflects the input values.
	cfg := r.Config()
	if cfg["runtime"] != "python" || cfg["region"] != "WestEurope" || cfg["replica_count"] != 2 {
		t.Errorf("Unexpected config view: %v", cfg)
	}
}

func TestFactory_CreateUnknownType(t *testing.T) {
	f := newTestFactory()

	_, err := f.Create("Unknown", "x", map[string]any{})
	if err == nil {
		t.Fatal("Expected error, got none")
	}
	// The registry failure propagates unchanged through the factory.
	if !resource.IsTypeNotRegistered(err) {
		t.Errorf("Expected TYPE_NOT_REGISTERED, got: %v", err)
	}
}

func TestFactory_CreateInvalidConfigPropagates(t *testing.T) {
	f := newTestFactory()

	_, err := f.Create("CacheDB", "cache1", map[string]any{
		"ttl_seconds":     10,
		"capacity_mb":     512,
		"eviction_policy": "LRU",
	})
	if err == nil {
		t.Fatal("Expected error, got none")
	}
	if !resource.IsInvalidConfig(err) {
		t.Errorf("Expected INVALID_CONFIG, got: %v", err)
	}
}

func TestFactory_CacheDBNormalization(t *testing.T) {
	f := newTestFactory()

	r, err := f.Create("CacheDB", "cache1", map[string]any{
		"ttl_seconds":     3600,
		"capacity_mb":     512,
		"eviction_policy": "lru",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := r.Config()["eviction_policy"]; got != "LRU" {
		t.Errorf("Expected stored policy LRU, got %v", got)
	}
}

func TestFactory_Types(t *testing.T) {
	f := newTestFactory()

	types := f.Types()
	if len(types) != 3 {
		t.Fatalf("Expected 3 types, got %d: %v", len(types), types)
	}
}
