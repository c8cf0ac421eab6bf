package resource

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TypeCacheDB is the registered type name for in-memory cache databases.
const TypeCacheDB = "CacheDB"

// Validation constraints for cache databases.
const (
	minCacheTTLSeconds = 60    // 1 minute
	maxCacheTTLSeconds = 86400 // 24 hours
	minCacheCapacityMB = 128
	maxCacheCapacityMB = 16384 // 16 GB
)

// CacheDBSpec configures an in-memory cache database.
type CacheDBSpec struct {
	// TTLSeconds is how long entries stay in the cache.
	TTLSeconds int `json:"ttl_seconds" validate:"min=60,max=86400"`

	// CapacityMB is the memory capacity limit.
	CapacityMB int `json:"capacity_mb" validate:"min=128,max=16384"`

	// EvictionPolicy selects how entries are evicted when full.
	// Normalized to upper case before validation.
	EvictionPolicy string `json:"eviction_policy" validate:"oneof=LRU FIFO LFU"`
}

// Type implements Spec.
func (s *CacheDBSpec) Type() string { return TypeCacheDB }

// Validate implements Spec. The eviction policy is case-normalized to upper
// before the rules run, so "lru" and "LRU" are equivalent inputs.
func (s *CacheDBSpec) Validate() error {
	s.EvictionPolicy = strings.ToUpper(strings.TrimSpace(s.EvictionPolicy))

	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return configViolation(err, func(fe validator.FieldError) string {
		switch fe.Field() {
		case "TTLSeconds":
			return fmt.Sprintf("ttl_seconds must be between %d and %d (1 minute to 24 hours), got %d", minCacheTTLSeconds, maxCacheTTLSeconds, s.TTLSeconds)
		case "CapacityMB":
			return fmt.Sprintf("capacity_mb must be between %d and %d (128MB to 16GB), got %d", minCacheCapacityMB, maxCacheCapacityMB, s.CapacityMB)
		case "EvictionPolicy":
			return fmt.Sprintf("invalid eviction policy %q: must be one of LRU, FIFO, LFU", s.EvictionPolicy)
		}
		return ""
	})
}

// Config implements Spec.
func (s *CacheDBSpec) Config() map[string]any {
	return map[string]any{
		"ttl_seconds":     s.TTLSeconds,
		"capacity_mb":     s.CapacityMB,
		"eviction_policy": s.EvictionPolicy,
	}
}

// NewCacheDB constructs a CacheDB resource from typed fields.
func NewCacheDB(name string, ttlSeconds, capacityMB int, evictionPolicy string, audit AuditLogger) (*Resource, error) {
	return New(name, &CacheDBSpec{
		TTLSeconds:     ttlSeconds,
		CapacityMB:     capacityMB,
		EvictionPolicy: evictionPolicy,
	}, audit)
}
