// Package registry provides a global registry for level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/phase"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	Name   string
	Title  string
	Phases int
}

// Factory is a function that builds a fresh copy of a pack's catalog.
type Factory func() phase.Catalog

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from a pack's init() function.
// Panics if a pack with the same name is already registered or the catalog
// it builds is invalid.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", name))
	}

	cat := f()
	if err := cat.Validate(); err != nil {
		panic(fmt.Sprintf("registry: pack %q is invalid: %v", name, err))
	}

	factories[name] = f
	infos[name] = PackInfo{
		Name:   name,
		Title:  cat.DisplayTitle(),
		Phases: cat.Len(),
	}
}

// List returns information about all registered packs, sorted by name.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds the catalog of a pack by its name.
// Returns an error if the pack is not registered.
func Create(name string) (phase.Catalog, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return phase.Catalog{}, fmt.Errorf("registry: unknown pack %q", name)
	}

	return f(), nil
}

// Exists checks if a pack with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
