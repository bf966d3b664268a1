// ABOUTME: Configuration types for declaratively registered list tables.
// ABOUTME: Consumers build a Config and register it once at startup.

package table

import (
	"context"

	"github.com/plumline/listtable/format"
)

// Config describes one admin list table. It is built once at startup,
// normalized once, and treated as immutable afterwards.
type Config struct {
	// ID identifies the table and prefixes its nonce actions.
	ID string `validate:"required"`

	// Page is the admin slug the table is served under. Defaults to ID.
	Page string

	Labels  Labels
	PerPage int

	// Capability gates viewing the table and is the default for actions
	// without their own.
	Capability string

	Columns map[string]Column

	// ColumnOrder fixes the rendering order of columns. Defaults to the
	// column ids sorted alphabetically with "id" first.
	ColumnOrder []string

	// Sortable lists column ids that allow ordering. Columns with
	// Sortable set are merged in during normalization.
	Sortable []string

	RowActions  RowActions
	BulkActions []BulkAction
	Filters     []Filter

	// Views fixes the ordering of the status views bar. Defaults to the
	// keys reported by Callbacks.GetCounts, sorted.
	Views []string

	Callbacks Callbacks

	// StatusStyles and StatusLabels override the badge resolver for this
	// table only.
	StatusStyles map[string]format.Severity
	StatusLabels map[string]string

	Help string

	normalized bool
}

// Labels are the user-facing strings for a table.
type Labels struct {
	Singular string
	Plural   string
	Search   string
	NotFound string
}

// Column describes one column of the table.
type Column struct {
	// Title is the header label. Empty titles are derived from the
	// column id during normalization.
	Title string

	// Type selects the formatter. Empty types are inferred from the
	// column id; explicit values are never overwritten.
	Type format.Type

	Sortable bool
	Align    string // "left", "center", "right"
	Width    string
	Class    string

	// Editable enables inline updates through the column AJAX endpoint.
	Editable bool

	// Render overrides formatting entirely. It receives the row and
	// must return a safe HTML fragment.
	Render func(Row) string
}

// RowActions holds the per-row action set. Edit, View, and Delete are
// shorthands expanded to canonical definitions during normalization.
type RowActions struct {
	Edit   bool
	View   bool
	Delete bool
	Custom []Action
}

// Action describes one row action. Actions with a Handler dispatch through
// the nonce-verified action endpoint; actions without one render as plain
// links to their URL template.
type Action struct {
	ID    string
	Title string

	// URL is a link template. "{id}" and "{table}" are replaced at
	// render time. Ignored when Handler is set.
	URL string

	// Handler runs when the action is dispatched. Its error becomes a
	// failure notice; it never aborts the redirect.
	Handler func(ctx context.Context, id string) error

	// Nonce is the verification action template. Handlers without one
	// get "{table}-{action}-{id}" during normalization.
	Nonce string

	// Confirm is shown as a confirmation prompt before the request.
	Confirm string

	// Capability overrides the table capability for this action.
	Capability string

	Destructive bool
}

// BulkAction describes an action applied to a selection of rows. Exactly one
// of Handler (whole selection at once) or PerItem (once per id) should be
// set; PerItem errors are skipped, not aggregated.
type BulkAction struct {
	ID         string
	Title      string
	Handler    func(ctx context.Context, ids []string) error
	PerItem    func(ctx context.Context, id string) error
	Capability string
	Confirm    string
}

// Filter describes one dropdown filter. Its query parameter is the filter
// id.
type Filter struct {
	ID      string
	Title   string
	Options []Option
}

// Option is one filter choice.
type Option struct {
	Value string
	Label string
}

// Callbacks bind the table to the caller's data layer. GetItems is required
// for the table to render; everything else degrades gracefully when nil.
type Callbacks struct {
	// GetItems returns one page of rows plus the unfiltered total.
	GetItems func(ctx context.Context, q Query) ([]Row, int, error)

	// GetCounts returns per-status totals for the views bar.
	GetCounts func(ctx context.Context) (map[string]int, error)

	// Delete removes one row. Backs the expanded delete row action.
	Delete func(ctx context.Context, id string) error

	// Update applies an inline column edit and returns the stored value.
	Update func(ctx context.Context, id, column, value string) (string, error)

	// Process handles bulk actions that have no definition of their own.
	Process func(ctx context.Context, action string, ids []string) error
}

// Query is the decoded request state for one list page load.
type Query struct {
	Page    int
	PerPage int
	OrderBy string
	Order   string // "asc" or "desc"
	Search  string
	Status  string
	Filters map[string]string
}

// Normalized reports whether the config went through Normalize.
func (c Config) Normalized() bool {
	return c.normalized
}

// ActionByID finds a row action definition.
func (c Config) ActionByID(id string) (Action, bool) {
	for _, a := range c.RowActions.Custom {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// BulkActionByID finds a bulk action definition.
func (c Config) BulkActionByID(id string) (BulkAction, bool) {
	for _, b := range c.BulkActions {
		if b.ID == id {
			return b, true
		}
	}
	return BulkAction{}, false
}

// SortableSet returns the sortable column ids as a set.
func (c Config) SortableSet() map[string]bool {
	set := make(map[string]bool, len(c.Sortable))
	for _, col := range c.Sortable {
		set[col] = true
	}
	return set
}
