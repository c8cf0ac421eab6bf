// Package stores provides the persistent audit trail for CloudConnect.
//
// Resources themselves are purely in-memory; only the audit trail of
// operations performed on them survives a process restart. The trail is
// kept in a SQLite database (modernc.org/sqlite, CGO-free) with the schema
// managed by embedded golang-migrate migrations.
//
// Typical usage:
//
//	store, err := stores.NewSQLiteStore(stores.Config{Path: "audit.db"})
//	if err != nil {
//	    return err
//	}
//	if err := store.Init(ctx); err != nil {
//	    return err
//	}
//	defer store.Close()
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//
//	records, err := store.ListAudit(ctx, "AppService", 20)
package stores
