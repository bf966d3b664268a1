// ABOUTME: Row accessor types for list table data.
// ABOUTME: Rows expose fields by name; the library never mutates them.

package table

import "fmt"

// Row is the read-only accessor for one record. Any type with a Field
// method can back a table row; the library only ever reads through it.
type Row interface {
	Field(name string) (any, bool)
}

// MapRow adapts a plain map to the Row interface.
type MapRow map[string]any

// Field returns the named value.
func (m MapRow) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// RowID extracts the row's identifier: an "id" field, falling back to "ID".
// Returns "" when the row has neither.
func RowID(r Row) string {
	if r == nil {
		return ""
	}
	for _, key := range []string{"id", "ID"} {
		if v, ok := r.Field(key); ok && v != nil {
			return fmt.Sprint(v)
		}
	}
	return ""
}
