// Package resource defines the core domain model of CloudConnect: the
// resource envelope, its lifecycle state machine, the built-in variants, and
// the classified error taxonomy.
//
// # Resource Model
//
// A Resource is a common envelope (id, name, lifecycle state, creation
// timestamp, soft-delete flag) around a variant Spec. The variant set is
// closed: AppService, StorageAccount, and CacheDB, each owning typed
// configuration validated strictly at construction. A resource is never
// observable with an invalid configuration.
//
// # Lifecycle
//
// The lifecycle has four states with Created as initial and Deleted as
// terminal:
//
//	Created --start--> Started --stop--> Stopped --start--> Started
//	Created --delete--> Deleted
//	Stopped --delete--> Deleted
//
// Transitions are computed by the pure Transition function; the resource
// applies the new state and deleted flag atomically and emits an audit
// record. Every disallowed (state, operation) pair yields an
// INVALID_TRANSITION error carrying the current state, the attempted
// operation, and the reason. Deletion is soft: the Deleted state preserves
// metadata and absorbs all further operations.
//
// # Error Classification
//
// All failures are *Error values classified by Code:
//
//   - INVALID_CONFIG: configuration failed validation at construction
//   - INVALID_TRANSITION: lifecycle operation disallowed from current state
//   - NOT_FOUND / ALREADY_EXISTS: repository lookup and duplicate errors
//   - TYPE_NOT_REGISTERED: unknown resource type name
//
// Use the Is* helpers to dispatch on error kind:
//
//	if resource.IsInvalidTransition(err) {
//	    // stop the resource first
//	}
//
// # Registration
//
// Builtins returns the builder table for the three variants. Registration is
// explicit and deterministic: the caller feeds the table to a registry at
// process start, before any factory use.
package resource
