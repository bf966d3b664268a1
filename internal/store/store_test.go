// ABOUTME: Tests for SQLite store initialization and schema migrations.
// ABOUTME: Verifies database setup, migration tracking, and reset.

package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test_listtable.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	s := newTestStore(t)

	for _, table := range []string{"orders", "schema_migrations"} {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	s := newTestStore(t)

	version, err := s.getCurrentMigrationVersion()
	if err != nil {
		t.Fatalf("getCurrentMigrationVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestNewStore_MigrationIdempotent(t *testing.T) {
	s := newTestStore(t)

	// Running migrate again on an up-to-date schema must be a no-op.
	if err := s.migrate(); err != nil {
		t.Fatalf("second migrate() error = %v", err)
	}

	version, _ := s.getCurrentMigrationVersion()
	if version != CurrentSchemaVersion {
		t.Errorf("schema version = %d after re-migrate, want %d", version, CurrentSchemaVersion)
	}
}

func TestStore_Reset(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateOrder(context.Background(), &Order{ID: "1", OrderNumber: "ORD-1", CreatedAt: 1}); err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	_, total, err := s.ListOrders(context.Background(), defaultQuery())
	if err != nil {
		t.Fatalf("ListOrders() after reset error = %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d after reset, want 0", total)
	}
}
