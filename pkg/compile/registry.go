package compile

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores packagers by name with discovery and duplication
// safeguards.
type Registry struct {
	mu        sync.RWMutex
	packagers map[string]Packager
}

// NewRegistry creates a registry preloaded with the built-in packagers.
func NewRegistry() *Registry {
	r := &Registry{packagers: make(map[string]Packager)}
	r.MustRegister(SplitPackager{})
	r.MustRegister(InlinePackager{})
	return r
}

// Register adds a packager by its Name(). Duplicate names return an error.
func (r *Registry) Register(packager Packager) error {
	if packager == nil {
		return fmt.Errorf("compile: packager is required")
	}
	name := packager.Name()
	if name == "" {
		return fmt.Errorf("compile: packager name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packagers[name]; exists {
		return fmt.Errorf("compile: packager %q already registered", name)
	}
	r.packagers[name] = packager
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(packager Packager) {
	if err := r.Register(packager); err != nil {
		panic(err)
	}
}

// Get retrieves a packager by name.
func (r *Registry) Get(name string) (Packager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	packager, ok := r.packagers[name]
	if !ok {
		return nil, fmt.Errorf("compile: packager %q not found", name)
	}
	return packager, nil
}

// List returns the sorted packager names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.packagers))
	for name := range r.packagers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
