// ABOUTME: Config normalization: defaults merge, shorthand expansion, type inference.
// ABOUTME: Idempotent; caller-supplied values are never overwritten.

package table

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/plumline/listtable/format"
)

var validate = validator.New()

var titleCaser = cases.Title(language.English)

// Normalize merges a config with defaults, expands shorthands, and infers
// column types. It is idempotent: normalizing an already-normalized config
// changes nothing. Caller-supplied values always win; normalization only
// fills gaps.
func Normalize(cfg Config) (Config, error) {
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("table config: %w", err)
	}

	defaults := Config{
		Page:       cfg.ID,
		PerPage:    20,
		Capability: "manage",
		Labels:     deriveLabels(cfg.ID),
	}
	if err := mergo.Merge(&cfg, defaults); err != nil {
		return cfg, fmt.Errorf("table config: merging defaults: %w", err)
	}

	normalizeColumns(&cfg)
	expandRowActions(&cfg)
	fillNonceTemplates(&cfg)

	cfg.normalized = true
	return cfg, nil
}

// deriveLabels builds label defaults from the table id.
func deriveLabels(id string) Labels {
	plural := deriveTitle(id)
	singular := plural
	if strings.HasSuffix(singular, "s") && !strings.HasSuffix(singular, "ss") {
		singular = strings.TrimSuffix(singular, "s")
	}
	return Labels{
		Singular: singular,
		Plural:   plural,
		Search:   "Search " + strings.ToLower(plural),
		NotFound: "No " + strings.ToLower(plural) + " found.",
	}
}

// deriveTitle turns a column or table id into a display label.
func deriveTitle(id string) string {
	label := strings.NewReplacer("_", " ", "-", " ").Replace(id)
	return titleCaser.String(label)
}

func normalizeColumns(cfg *Config) {
	sortable := cfg.SortableSet()

	for id, col := range cfg.Columns {
		if col.Title == "" {
			col.Title = deriveTitle(id)
		}
		if col.Type == "" && col.Render == nil {
			col.Type = format.Detect(id)
		}
		if sortable[id] {
			col.Sortable = true
		}
		cfg.Columns[id] = col
	}

	// Columns flagged sortable individually join the sortable list.
	for id, col := range cfg.Columns {
		if col.Sortable && !sortable[id] {
			cfg.Sortable = append(cfg.Sortable, id)
			sortable[id] = true
		}
	}
	sort.Strings(cfg.Sortable)

	if len(cfg.ColumnOrder) == 0 {
		cfg.ColumnOrder = defaultColumnOrder(cfg.Columns)
	}
}

// defaultColumnOrder sorts column ids alphabetically with "id" first.
func defaultColumnOrder(columns map[string]Column) []string {
	ids := make([]string, 0, len(columns))
	for id := range columns {
		if id == "id" {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if _, ok := columns["id"]; ok {
		ids = append([]string{"id"}, ids...)
	}
	return ids
}

// expandRowActions turns the Edit/View/Delete booleans into canonical action
// definitions. Existing definitions with the same id are left alone, which
// keeps the expansion idempotent.
func expandRowActions(cfg *Config) {
	var expanded []Action

	if cfg.RowActions.Edit {
		if _, ok := cfg.ActionByID("edit"); !ok {
			expanded = append(expanded, Action{
				ID:    "edit",
				Title: "Edit",
				URL:   "{base}/edit/{id}",
			})
		}
	}
	if cfg.RowActions.View {
		if _, ok := cfg.ActionByID("view"); !ok {
			expanded = append(expanded, Action{
				ID:    "view",
				Title: "View",
				URL:   "{base}/view/{id}",
			})
		}
	}
	if cfg.RowActions.Delete {
		if _, ok := cfg.ActionByID("delete"); !ok {
			del := cfg.Callbacks.Delete
			if del == nil {
				slog.Warn("listtable: delete row action disabled, no Delete callback configured", "table", cfg.ID)
			} else {
				expanded = append(expanded, Action{
					ID:          "delete",
					Title:       "Delete",
					Handler:     del,
					Confirm:     "Are you sure you want to delete this item? This cannot be undone.",
					Destructive: true,
				})
			}
		}
	}

	cfg.RowActions.Custom = append(expanded, cfg.RowActions.Custom...)
}

// fillNonceTemplates gives every dispatchable action a nonce action of the
// form "{table}-{action}-{id}" unless the caller set one explicitly.
func fillNonceTemplates(cfg *Config) {
	for i, a := range cfg.RowActions.Custom {
		if a.Handler != nil && a.Nonce == "" {
			a.Nonce = cfg.ID + "-" + a.ID + "-{id}"
			cfg.RowActions.Custom[i] = a
		}
	}
}
