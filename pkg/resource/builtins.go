package resource

import (
	"fmt"
	"math"
)

// Builder constructs a resource of one variant from a raw configuration bag.
// The bag's fields are decoded into the variant's typed configuration; a
// missing or mistyped field is an INVALID_CONFIG error.
type Builder func(name string, config map[string]any) (*Resource, error)

// Builtins returns the builder table for all built-in resource types.
// Registration is an explicit initialization step: callers feed this table
// to a registry before any factory use, there are no import-time side effects.
func Builtins(audit AuditLogger) map[string]Builder {
	return map[string]Builder{
		TypeAppService: func(name string, config map[string]any) (*Resource, error) {
			runtime, err := stringField(config, "runtime")
			if err != nil {
				return nil, err
			}
			region, err := stringField(config, "region")
			if err != nil {
				return nil, err
			}
			replicas, err := intField(config, "replica_count")
			if err != nil {
				return nil, err
			}
			return NewAppService(name, runtime, region, replicas, audit)
		},

		TypeStorageAccount: func(name string, config map[string]any) (*Resource, error) {
			encryption, err := boolField(config, "encryption_enabled")
			if err != nil {
				return nil, err
			}
			accessKey, err := stringField(config, "access_key")
			if err != nil {
				return nil, err
			}
			maxSize, err := intField(config, "max_size_gb")
			if err != nil {
				return nil, err
			}
			return NewStorageAccount(name, encryption, accessKey, maxSize, audit)
		},

		TypeCacheDB: func(name string, config map[string]any) (*Resource, error) {
			ttl, err := intField(config, "ttl_seconds")
			if err != nil {
				return nil, err
			}
			capacity, err := intField(config, "capacity_mb")
			if err != nil {
				return nil, err
			}
			policy, err := stringField(config, "eviction_policy")
			if err != nil {
				return nil, err
			}
			return NewCacheDB(name, ttl, capacity, policy, audit)
		},
	}
}

func stringField(config map[string]any, key string) (string, error) {
	v, ok := config[key]
	if !ok {
		return "", NewInvalidConfigError(fmt.Sprintf("missing required field %q", key))
	}
	s, ok := v.(string)
	if !ok {
		return "", NewInvalidConfigError(fmt.Sprintf("field %q must be a string, got %T", key, v))
	}
	return s, nil
}

// intField accepts the integer encodings produced by YAML and JSON decoding
// in addition to plain ints.
func intField(config map[string]any, key string) (int, error) {
	v, ok := config[key]
	if !ok {
		return 0, NewInvalidConfigError(fmt.Sprintf("missing required field %q", key))
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, NewInvalidConfigError(fmt.Sprintf("field %q must be an integer, got %v", key, n))
		}
		return int(n), nil
	}
	return 0, NewInvalidConfigError(fmt.Sprintf("field %q must be an integer, got %T", key, v))
}

func boolField(config map[string]any, key string) (bool, error) {
	v, ok := config[key]
	if !ok {
		return false, NewInvalidConfigError(fmt.Sprintf("missing required field %q", key))
	}
	b, ok := v.(bool)
	if !ok {
		return false, NewInvalidConfigError(fmt.Sprintf("field %q must be a boolean, got %T", key, v))
	}
	return b, nil
}
