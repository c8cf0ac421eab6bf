package resource

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Spec is the capability set a resource variant must provide: a type name,
// strict validation of its configuration, and a read-only configuration view.
type Spec interface {
	// Type returns the registered type name of the variant.
	Type() string

	// Validate checks the variant configuration and returns an
	// INVALID_CONFIG error on the first violated rule.
	Validate() error

	// Config returns the configuration view used for display and audit
	// context. Secret fields are masked in this view.
	Config() map[string]any
}

// AuditLogger records resource operations. The recorder is an external
// collaborator: it must never block indefinitely and never mutate the
// resource. Implementations live in pkg/telemetry.
type AuditLogger interface {
	Log(resourceType, message string, config map[string]any)
}

// nopAuditLogger is used when no recorder is wired (tests, library use).
type nopAuditLogger struct{}

func (nopAuditLogger) Log(string, string, map[string]any) {}

// Resource is the common envelope around a variant spec. It owns the
// lifecycle state and applies transitions atomically: state and deleted
// flag change together, and only through Start/Stop/Delete.
type Resource struct {
	id        string
	name      string
	state     State
	createdAt time.Time
	deleted   bool
	spec      Spec
	audit     AuditLogger
}

// New constructs a resource from a name and a variant spec. The name must be
// non-empty after trimming and the spec must validate; no resource is
// observable until both checks pass. The initial state is Created and a
// "created" audit record is emitted.
func New(name string, spec Spec, audit AuditLogger) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidConfigError("resource name cannot be empty")
	}
	if spec == nil {
		return nil, NewInvalidConfigError("resource spec is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if audit == nil {
		audit = nopAuditLogger{}
	}

	r := &Resource{
		id:        uuid.NewString(),
		name:      name,
		state:     StateCreated,
		createdAt: time.Now(),
		deleted:   false,
		spec:      spec,
		audit:     audit,
	}

	r.audit.Log(r.Type(), "created", r.Config())
	return r, nil
}

// ID returns the unique identifier assigned at construction.
func (r *Resource) ID() string { return r.id }

// Name returns the resource name.
func (r *Resource) Name() string { return r.name }

// Type returns the variant type name.
func (r *Resource) Type() string { return r.spec.Type() }

// State returns the current lifecycle state.
func (r *Resource) State() State { return r.state }

// CreatedAt returns the construction timestamp. It never changes.
func (r *Resource) CreatedAt() time.Time { return r.createdAt }

// IsDeleted reports whether the resource has been soft-deleted.
// It is true exactly when the state is Deleted.
func (r *Resource) IsDeleted() bool { return r.deleted }

// Spec returns the variant spec. Callers needing variant-specific accessors
// (such as the unmasked storage access key) type-assert on the result.
func (r *Resource) Spec() Spec { return r.spec }

// Config returns the variant's read-only configuration view.
func (r *Resource) Config() map[string]any { return r.spec.Config() }

// Start transitions the resource to Started.
// Allowed from Created and Stopped.
func (r *Resource) Start() error { return r.apply(OpStart) }

// Stop transitions the resource to Stopped.
// Allowed from Started only.
func (r *Resource) Stop() error { return r.apply(OpStop) }

// Delete soft-deletes the resource. Allowed from Created and Stopped;
// a running resource must be stopped first. Metadata is preserved.
func (r *Resource) Delete() error { return r.apply(OpDelete) }

func (r *Resource) apply(op Op) error {
	from := r.state
	next, deleted, err := Transition(from, op)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return e.WithResource(r.name)
		}
		return err
	}

	r.state = next
	r.deleted = deleted
	r.audit.Log(r.Type(), transitionMessage(from, op, r.Config()), r.Config())
	return nil
}

// String returns a short display form for CLI output.
func (r *Resource) String() string {
	return fmt.Sprintf("%s %q (state: %s)", r.Type(), r.name, r.state)
}
