// ABOUTME: Registry for table configurations.
// ABOUTME: Consumers register normalized configs once at startup.

package table

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Config)
	mu       sync.RWMutex
)

// Register normalizes a config and adds it to the registry. It panics on
// duplicate ids or invalid configs, since both are programming errors at
// startup time.
func Register(cfg Config) {
	normalized, err := Normalize(cfg)
	if err != nil {
		panic(fmt.Sprintf("table %q: invalid config: %v", cfg.ID, err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[normalized.ID]; exists {
		panic(fmt.Sprintf("table %q already registered", normalized.ID))
	}
	registry[normalized.ID] = normalized
}

// Get retrieves a registered table config by id.
func Get(id string) (Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	cfg, ok := registry[id]
	return cfg, ok
}

// All returns all registered configs sorted by id.
func All() []Config {
	mu.RLock()
	defer mu.RUnlock()

	configs := make([]Config, 0, len(registry))
	for _, cfg := range registry {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
	return configs
}

// Names returns all registered table ids sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
