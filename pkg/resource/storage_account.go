package resource

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TypeStorageAccount is the registered type name for storage accounts.
const TypeStorageAccount = "StorageAccount"

// Validation constraints for storage accounts.
const (
	minAccessKeyLength = 8
	minStorageSizeGB   = 1
	maxStorageSizeGB   = 10000
)

// StorageAccountSpec configures a storage account.
type StorageAccountSpec struct {
	// EncryptionEnabled controls encryption at rest.
	EncryptionEnabled bool `json:"encryption_enabled"`

	// AccessKey is the secret authentication key. The Config view masks it;
	// read the field directly when the raw key is genuinely needed.
	AccessKey string `json:"access_key" validate:"min=8"`

	// MaxSizeGB is the storage capacity limit in gigabytes.
	MaxSizeGB int `json:"max_size_gb" validate:"min=1,max=10000"`
}

// Type implements Spec.
func (s *StorageAccountSpec) Type() string { return TypeStorageAccount }

// Validate implements Spec. It fails on the first violated rule.
func (s *StorageAccountSpec) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return configViolation(err, func(fe validator.FieldError) string {
		switch fe.Field() {
		case "AccessKey":
			return fmt.Sprintf("access_key must be at least %d characters", minAccessKeyLength)
		case "MaxSizeGB":
			return fmt.Sprintf("max_size_gb must be between %d and %d, got %d", minStorageSizeGB, maxStorageSizeGB, s.MaxSizeGB)
		}
		return ""
	})
}

// Config implements Spec. The access key is masked in this view.
func (s *StorageAccountSpec) Config() map[string]any {
	return map[string]any{
		"encryption_enabled": s.EncryptionEnabled,
		"access_key":         maskAccessKey(s.AccessKey),
		"max_size_gb":        s.MaxSizeGB,
	}
}

// maskAccessKey keeps the first and last 3 characters of the key visible.
// Keys of 6 characters or fewer are fully masked.
func maskAccessKey(key string) string {
	if len(key) <= 6 {
		return "***"
	}
	return key[:3] + "***" + key[len(key)-3:]
}

// NewStorageAccount constructs a StorageAccount resource from typed fields.
func NewStorageAccount(name string, encryptionEnabled bool, accessKey string, maxSizeGB int, audit AuditLogger) (*Resource, error) {
	return New(name, &StorageAccountSpec{
		EncryptionEnabled: encryptionEnabled,
		AccessKey:         accessKey,
		MaxSizeGB:         maxSizeGB,
	}, audit)
}
