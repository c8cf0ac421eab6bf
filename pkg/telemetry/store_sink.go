package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudconnect/cloudconnect/pkg/stores"
)

// storeWriteTimeout bounds a single audit insert so a wedged database
// cannot stall resource operations.
const storeWriteTimeout = 5 * time.Second

// StoreSink persists audit events to the SQLite audit trail.
type StoreSink struct {
	store *stores.SQLiteStore
}

// NewStoreSink creates a sink writing to the given store. The store must
// already be initialized and migrated.
func NewStoreSink(store *stores.SQLiteStore) *StoreSink {
	return &StoreSink{store: store}
}

// Write implements Sink.
func (s *StoreSink) Write(event AuditEvent) error {
	config := "{}"
	if len(event.Config) > 0 {
		data, err := json.Marshal(event.Config)
		if err != nil {
			return fmt.Errorf("failed to encode audit config: %w", err)
		}
		config = string(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeWriteTimeout)
	defer cancel()

	return s.store.AppendAudit(ctx, &stores.AuditRecord{
		ID:           event.ID,
		ResourceType: event.ResourceType,
		Message:      event.Message,
		Config:       config,
		CreatedAt:    event.Timestamp,
	})
}
