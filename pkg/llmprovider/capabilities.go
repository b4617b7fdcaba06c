package llmprovider

import "strings"

// Capabilities describes what a model family accepts on the wire.
// Resolved once per call site instead of scattering model-name prefix
// checks through prompt-building code.
type Capabilities struct {
	// SupportsSystemRole is false for model families that reject a
	// system message; callers must merge the system prompt into the
	// first user turn.
	SupportsSystemRole bool

	// SupportsTemperature is false for model families that reject a
	// temperature parameter.
	SupportsTemperature bool
}

// capabilityFamilies maps model-name prefixes to their capabilities.
// First match wins; unknown models get defaultCapabilities.
var capabilityFamilies = []struct {
	prefix string
	caps   Capabilities
}{
	{"o1", Capabilities{SupportsSystemRole: false, SupportsTemperature: false}},
	{"o3", Capabilities{SupportsSystemRole: false, SupportsTemperature: false}},
}

var defaultCapabilities = Capabilities{
	SupportsSystemRole:  true,
	SupportsTemperature: true,
}

// CapabilitiesFor resolves the capabilities of a model by name family.
func CapabilitiesFor(model string) Capabilities {
	for _, f := range capabilityFamilies {
		if strings.HasPrefix(model, f.prefix) {
			return f.caps
		}
	}
	return defaultCapabilities
}
