package gmm

import (
	"fmt"
	"sort"
	"sync"
)

// registryEntry pairs a variant's configuration record with its regression
// logic.
type registryEntry struct {
	spec Spec
	comp Computer
}

var registry = struct {
	sync.RWMutex
	entries map[string]registryEntry
}{entries: make(map[string]registryEntry)}

// Register adds a model variant under its spec abbreviation so it can be
// instantiated by identifier with Create. Registration fails if the spec is
// invalid or the identifier is already taken.
func Register(spec Spec, comp Computer) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if comp == nil {
		return fmt.Errorf("model %s: computer cannot be nil", spec.Abbrev)
	}

	registry.Lock()
	defer registry.Unlock()
	if _, exists := registry.entries[spec.Abbrev]; exists {
		return fmt.Errorf("model %q is already registered", spec.Abbrev)
	}
	registry.entries[spec.Abbrev] = registryEntry{spec: spec, comp: comp}
	return nil
}

// MustRegister is like Register but panics on error. Intended for variant
// registration from package init functions.
func MustRegister(spec Spec, comp Computer) {
	if err := Register(spec, comp); err != nil {
		panic(err)
	}
}

// Create is a factory that instantiates a registered model variant for the
// given input values.
func Create(id string, values map[string]any, opts ...Option) (*Model, error) {
	registry.RLock()
	entry, ok := registry.entries[id]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported model: %q", id)
	}
	return New(entry.spec, entry.comp, values, opts...)
}

// IDs returns the identifiers of all registered model variants, sorted.
func IDs() []string {
	registry.RLock()
	defer registry.RUnlock()
	ids := make([]string, 0, len(registry.entries))
	for id := range registry.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
