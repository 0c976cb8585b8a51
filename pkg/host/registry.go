package host

// RegistryName is the key the widget constructor is published under in a host
// widget registry.
const RegistryName = "herald.widgets.SchemaWidget"

// Constructor builds a bound widget from a binding config. NewBoundWidget is
// the canonical implementation.
type Constructor func(Config) (*BoundWidget, error)

// Registrar is the seam a host framework exposes for widget registration.
type Registrar interface {
	Register(name string, build Constructor)
}

// RegisterWith publishes the widget constructor under RegistryName. A nil
// registrar is not an error; the widget stays usable through NewBoundWidget
// directly. The return value reports whether registration happened.
func RegisterWith(r Registrar) bool {
	if r == nil {
		return false
	}
	r.Register(RegistryName, NewBoundWidget)
	return true
}
