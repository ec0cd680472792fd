// Package registry manages the available feed modules.
package registry

import (
	"fmt"
	"sort"

	"scorepanel/internal/feeds/schedule"
	"scorepanel/internal/feeds/scoreboard"
	"scorepanel/pkg/contracts"
)

// Registry maps feed keys to their modules.
type Registry struct {
	modules map[string]contracts.FeedModule
}

// New creates a registry with all available feeds registered.
func New() *Registry {
	r := &Registry{
		modules: make(map[string]contracts.FeedModule),
	}

	r.Register(schedule.New())
	r.Register(scoreboard.New())

	return r
}

// Register adds a feed module to the registry.
func (r *Registry) Register(module contracts.FeedModule) {
	r.modules[module.Key()] = module
}

// Get retrieves a feed module by key.
func (r *Registry) Get(key string) (contracts.FeedModule, error) {
	module, ok := r.modules[key]
	if !ok {
		return nil, fmt.Errorf("feed module not found: %s (known feeds: %v)", key, r.Keys())
	}
	return module, nil
}

// Keys returns all registered feed keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.modules))
	for key := range r.modules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
