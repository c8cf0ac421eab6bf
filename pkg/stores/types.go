package stores

import "time"

// AuditRecord is a persisted audit trail entry: one resource operation.
type AuditRecord struct {
	// ID is the audit event id assigned by the recorder.
	ID string `json:"id"`

	// ResourceType is the resource type name.
	ResourceType string `json:"resource_type"`

	// Message describes the operation.
	Message string `json:"message"`

	// Config is the configuration snapshot at the time of the operation,
	// serialized as JSON. Secret fields are masked before they reach the
	// store.
	Config string `json:"config"`

	// CreatedAt is when the operation happened.
	CreatedAt time.Time `json:"created_at"`
}
