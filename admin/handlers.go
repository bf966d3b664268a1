// ABOUTME: HTTP handlers for list table pages.
// ABOUTME: Serves the dashboard, list views, and the inline column endpoint.

package admin

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/plumline/listtable/auth"
	"github.com/plumline/listtable/format"
	"github.com/plumline/listtable/nonce"
	"github.com/plumline/listtable/notice"
	"github.com/plumline/listtable/table"
)

type Handlers struct {
	nonces *nonce.Service
	log    *slog.Logger
}

// NewHandlers wires the admin surface. A nil nonce service gets a fresh one
// with a random per-process secret.
func NewHandlers(nonces *nonce.Service) *Handlers {
	if nonces == nil {
		nonces = nonce.New(nil)
	}
	return &Handlers{
		nonces: nonces,
		log:    slog.With("component", "admin"),
	}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/admin", h.dashboard)
	r.Route("/admin/tables/{table}", func(r chi.Router) {
		r.Get("/", h.listView)
		r.Get("/action/{action}", h.rowAction)
		r.Post("/bulk", h.bulkAction)
		r.Post("/column", h.columnUpdate)
	})
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		ID    string
		Title string
		Help  string
	}

	user := auth.UserFromContext(r.Context())
	var entries []entry
	for _, cfg := range table.All() {
		if !user.Can(cfg.Capability) {
			continue
		}
		entries = append(entries, entry{ID: cfg.ID, Title: cfg.Labels.Plural, Help: cfg.Help})
	}

	w.Header().Set("Content-Type", "text/html")
	renderPage(w, "dashboard", map[string]any{
		"Title":  "Admin",
		"Tables": entries,
	})
}

func (h *Handlers) listView(w http.ResponseWriter, r *http.Request) {
	cfg, ok := table.Get(chi.URLParam(r, "table"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	user := auth.UserFromContext(r.Context())
	if !user.Can(cfg.Capability) {
		http.Error(w, "insufficient permissions", http.StatusForbidden)
		return
	}

	q := parseQuery(cfg, r)

	if cfg.Callbacks.GetItems == nil {
		h.log.Warn("table has no GetItems callback", "table", cfg.ID)
		http.Error(w, "table is not wired to a data source", http.StatusInternalServerError)
		return
	}

	rows, total, err := cfg.Callbacks.GetItems(r.Context(), q)
	if err != nil {
		h.log.Error("loading items failed", "table", cfg.ID, "error", err)
		http.Error(w, "failed to load items", http.StatusInternalServerError)
		return
	}

	var counts map[string]int
	if cfg.Callbacks.GetCounts != nil {
		counts, err = cfg.Callbacks.GetCounts(r.Context())
		if err != nil {
			h.log.Warn("loading status counts failed", "table", cfg.ID, "error", err)
			counts = nil
		}
	}

	query := r.URL.Query()
	n := notice.Decode(query)

	w.Header().Set("Content-Type", "text/html")
	renderPage(w, "table-list", map[string]any{
		"Title":   cfg.Labels.Plural,
		"Heading": cfg.Labels.Plural,
		"Help":    cfg.Help,
		"Notice":  template.HTML(RenderNotice(cfg, n)),
		"Table":   template.HTML(RenderList(cfg, rows, total, counts, query, q, user, h.nonces)),
	})
}

// parseQuery decodes the list request state. Unknown orderby columns are
// dropped rather than passed through to the data layer.
func parseQuery(cfg table.Config, r *http.Request) table.Query {
	v := r.URL.Query()

	q := table.Query{
		Page:    1,
		PerPage: cfg.PerPage,
		Order:   "asc",
		Search:  v.Get("s"),
		Status:  v.Get("status"),
	}
	if q.PerPage <= 0 {
		q.PerPage = 20
	}

	if paged, err := strconv.Atoi(v.Get("paged")); err == nil && paged > 1 {
		q.Page = paged
	}

	if orderBy := v.Get("orderby"); cfg.SortableSet()[orderBy] {
		q.OrderBy = orderBy
		if v.Get("order") == "desc" {
			q.Order = "desc"
		}
	}

	for _, f := range cfg.Filters {
		if val := v.Get(f.ID); val != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[f.ID] = val
		}
	}

	return q
}

// columnUpdate is the inline edit endpoint. It answers JSON in the envelope
// shape regardless of outcome.
func (h *Handlers) columnUpdate(w http.ResponseWriter, r *http.Request) {
	cfg, ok := table.Get(chi.URLParam(r, "table"))
	if !ok {
		writeJSONError(w, http.StatusNotFound, "unknown table")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed form")
		return
	}

	column := r.PostFormValue("column")
	itemID := r.PostFormValue("item_id")
	value := r.PostFormValue("value")

	col, exists := cfg.Columns[column]
	if !exists || !col.Editable {
		writeJSONError(w, http.StatusBadRequest, "column is not editable")
		return
	}

	user := auth.UserFromContext(r.Context())
	if !h.nonces.Verify(r.PostFormValue("_nonce"), columnNonceAction(cfg.ID, itemID), user.Name) {
		writeJSONError(w, http.StatusForbidden, "invalid or expired nonce")
		return
	}
	if !user.Can(cfg.Capability) {
		writeJSONError(w, http.StatusForbidden, "insufficient permissions")
		return
	}

	if cfg.Callbacks.Update == nil {
		writeJSONError(w, http.StatusBadRequest, "inline editing is not wired for this table")
		return
	}

	stored, err := cfg.Callbacks.Update(r.Context(), itemID, column, value)
	if err != nil {
		h.log.Error("column update failed", "table", cfg.ID, "column", column, "id", itemID, "error", err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	formatted := format.Format(col.Type, stored, nil, format.Options{
		Column: column,
		Styles: cfg.StatusStyles,
		Labels: cfg.StatusLabels,
	})
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    envelopeData{Value: formatted, Message: "Updated"},
	})
}
