// Package layout provides a global registry of brick layout generators.
// Layouts register themselves in init() functions, allowing worlds to be
// seeded from named patterns without hardcoded dependencies. Generators
// are pure functions of the grid shape, so a layout name plus config
// always produces the same starting grid.
package layout

import (
	"fmt"
	"sort"
	"sync"
)

// Func generates the row-major starting cells for a rows x cols grid.
// hp is the configured hit-point value for a present cell; 0 marks a
// cell that was never present.
type Func func(rows, cols int, hp byte) []byte

var (
	generators = make(map[string]Func)
	mu         sync.RWMutex
)

// Register adds a layout generator to the registry.
// Panics if a layout with the same name is already registered.
func Register(name string, f Func) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := generators[name]; exists {
		panic(fmt.Sprintf("layout: %q already registered", name))
	}
	generators[name] = f
}

// Get returns a layout generator by name.
func Get(name string) (Func, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("layout: unknown layout %q", name)
	}
	return f, nil
}

// Names returns all registered layout names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a layout with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[name]
	return ok
}
