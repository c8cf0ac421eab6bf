package registry

import "github.com/cloudconnect/cloudconnect/pkg/resource"

// Factory instantiates resources by type name. It holds no state of its
// own: type resolution is delegated to the registry and construction to the
// variant builders.
type Factory struct {
	registry *Registry
}

// NewFactory creates a factory backed by the given registry.
func NewFactory(r *Registry) *Factory {
	return &Factory{registry: r}
}

// Create builds a resource of the named type from a raw configuration bag.
// A TYPE_NOT_REGISTERED error from the registry and an INVALID_CONFIG error
// from the variant builder both propagate unchanged.
func (f *Factory) Create(typeName, resourceName string, config map[string]any) (*resource.Resource, error) {
	builder, err := f.registry.Get(typeName)
	if err != nil {
		return nil, err
	}
	return builder(resourceName, config)
}

// Types returns the available resource type names.
func (f *Factory) Types() []string {
	return f.registry.List()
}
