// ABOUTME: Tests for the table config registry.
// ABOUTME: Validates registration, retrieval, duplicates, and concurrent access.

package table

import (
	"sync"
	"testing"
)

// resetRegistry clears the registry for testing
func resetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Config)
}

func minimalConfig(id string) Config {
	return Config{
		ID:      id,
		Columns: map[string]Column{"id": {}, "status": {}},
	}
}

func TestRegister(t *testing.T) {
	resetRegistry()

	Register(minimalConfig("orders"))

	cfg, ok := Get("orders")
	if !ok {
		t.Fatal("registered table not found")
	}
	if !cfg.Normalized() {
		t.Error("Register should store a normalized config")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry()

	Register(minimalConfig("orders"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(minimalConfig("orders"))
}

func TestRegisterInvalidConfigPanics(t *testing.T) {
	resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on config without an id")
		}
	}()
	Register(Config{})
}

func TestGetMissing(t *testing.T) {
	resetRegistry()

	if _, ok := Get("nope"); ok {
		t.Error("Get on an unknown id should report false")
	}
}

func TestAllAndNamesSorted(t *testing.T) {
	resetRegistry()

	Register(minimalConfig("orders"))
	Register(minimalConfig("customers"))
	Register(minimalConfig("licenses"))

	names := Names()
	want := []string{"customers", "licenses", "orders"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	all := All()
	if len(all) != 3 || all[0].ID != "customers" {
		t.Errorf("All() not sorted by id: %v", Names())
	}
}

func TestConcurrentAccess(t *testing.T) {
	resetRegistry()

	Register(minimalConfig("orders"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := Get("orders"); !ok {
				t.Error("concurrent Get failed")
			}
			_ = All()
			_ = Names()
		}()
	}
	wg.Wait()
}
