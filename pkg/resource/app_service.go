package resource

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TypeAppService is the registered type name for web application services.
const TypeAppService = "AppService"

// AppServiceSpec configures a hosted web application.
type AppServiceSpec struct {
	// Runtime is the application runtime stack.
	Runtime string `json:"runtime" validate:"oneof=python nodejs dotnet"`

	// Region is the deployment region.
	Region string `json:"region" validate:"oneof=EastUS WestEurope CentralIndia"`

	// ReplicaCount is the number of instances.
	ReplicaCount int `json:"replica_count" validate:"oneof=1 2 3"`
}

// Type implements Spec.
func (s *AppServiceSpec) Type() string { return TypeAppService }

// Validate implements Spec. It fails on the first violated rule.
func (s *AppServiceSpec) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return configViolation(err, func(fe validator.FieldError) string {
		switch fe.Field() {
		case "Runtime":
			return fmt.Sprintf("invalid runtime %q: must be one of python, nodejs, dotnet", s.Runtime)
		case "Region":
			return fmt.Sprintf("invalid region %q: must be one of EastUS, WestEurope, CentralIndia", s.Region)
		case "ReplicaCount":
			return fmt.Sprintf("invalid replica count %d: must be 1, 2 or 3", s.ReplicaCount)
		}
		return ""
	})
}

// Config implements Spec.
func (s *AppServiceSpec) Config() map[string]any {
	return map[string]any{
		"runtime":       s.Runtime,
		"region":        s.Region,
		"replica_count": s.ReplicaCount,
	}
}

// NewAppService constructs an AppService resource from typed fields.
func NewAppService(name, runtime, region string, replicaCount int, audit AuditLogger) (*Resource, error) {
	return New(name, &AppServiceSpec{
		Runtime:      runtime,
		Region:       region,
		ReplicaCount: replicaCount,
	}, audit)
}
