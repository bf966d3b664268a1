// ABOUTME: Tests for admin HTTP handlers.
// ABOUTME: Verifies list rendering, permissions, and inline column updates.

package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/plumline/listtable/auth"
	"github.com/plumline/listtable/nonce"
	"github.com/plumline/listtable/table"
)

var testNonces = nonce.New([]byte("test-secret"))

// newTestRouter registers the config and returns a router with the default
// identity middleware (super admin) in front of the admin routes.
func newTestRouter(t *testing.T, cfg table.Config) chi.Router {
	t.Helper()
	table.Register(cfg)

	r := chi.NewRouter()
	r.Use(auth.Middleware(nil))
	NewHandlers(testNonces).RegisterRoutes(r)
	return r
}

func ordersRows() []table.Row {
	return []table.Row{
		table.MapRow{
			"id":           "1",
			"order_number": "ORD-1001",
			"status":       "completed",
			"total_spent":  1050,
			"currency":     "USD",
			"items_count":  3,
		},
		table.MapRow{
			"id":           "2",
			"order_number": "ORD-1002",
			"status":       "pending",
			"total_spent":  99900,
			"currency":     "EUR",
			"items_count":  -1,
		},
	}
}

func ordersConfig(id string) table.Config {
	return table.Config{
		ID: id,
		Columns: map[string]table.Column{
			"id":           {},
			"order_number": {},
			"status":       {},
			"total_spent":  {},
			"items_count":  {},
		},
		Callbacks: table.Callbacks{
			GetItems: func(ctx context.Context, q table.Query) ([]table.Row, int, error) {
				return ordersRows(), 2, nil
			},
			GetCounts: func(ctx context.Context) (map[string]int, error) {
				return map[string]int{"completed": 1, "pending": 1}, nil
			},
		},
	}
}

func TestListViewRendersFormattedValues(t *testing.T) {
	r := newTestRouter(t, ordersConfig("handlers-orders"))

	req := httptest.NewRequest("GET", "/admin/tables/handlers-orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	want := []string{
		"$10.50",                // price in smallest units
		"€999.00",               // currency from sibling field
		"bg-green-100",          // completed badge
		"bg-yellow-100",         // pending badge
		"ORD-1001",              // code column
		"&infin;",               // -1 count
		"Completed",             // view label
		"(1)",                   // view count
		`name="s"`,              // search box
		"2 items",               // pagination summary
	}
	for _, s := range want {
		if !strings.Contains(body, s) {
			t.Errorf("list view missing %q", s)
		}
	}
}

func TestListViewUnknownTable(t *testing.T) {
	r := newTestRouter(t, ordersConfig("handlers-unknown-base"))

	req := httptest.NewRequest("GET", "/admin/tables/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListViewRequiresCapability(t *testing.T) {
	r := newTestRouter(t, ordersConfig("handlers-capability"))

	req := httptest.NewRequest("GET", "/admin/tables/handlers-capability", nil)
	req.Header.Set("Authorization", "Bearer user:bob")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 for capless user", w.Code)
	}
}

func TestListViewSortingRestrictedToSortable(t *testing.T) {
	cfg := ordersConfig("handlers-sorting")
	cfg.Sortable = []string{"total_spent"}

	var got table.Query
	cfg.Callbacks.GetItems = func(ctx context.Context, q table.Query) ([]table.Row, int, error) {
		got = q
		return nil, 0, nil
	}
	r := newTestRouter(t, cfg)

	req := httptest.NewRequest("GET", "/admin/tables/handlers-sorting?orderby=secret_column&order=desc", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got.OrderBy != "" {
		t.Errorf("unsortable column leaked into the query: %q", got.OrderBy)
	}

	req = httptest.NewRequest("GET", "/admin/tables/handlers-sorting?orderby=total_spent&order=desc&paged=3", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got.OrderBy != "total_spent" || got.Order != "desc" || got.Page != 3 {
		t.Errorf("query = %+v, want total_spent desc page 3", got)
	}
}

func TestColumnUpdate(t *testing.T) {
	updated := map[string]string{}
	cfg := ordersConfig("handlers-column")
	cfg.Columns["items_count"] = table.Column{Editable: true}
	cfg.Callbacks.Update = func(ctx context.Context, id, column, value string) (string, error) {
		updated[column] = value
		return value, nil
	}
	r := newTestRouter(t, cfg)

	token := testNonces.Issue(columnNonceAction("handlers-column", "1"), "admin")
	form := url.Values{
		"column":  {"items_count"},
		"item_id": {"1"},
		"value":   {"7"},
		"_nonce":  {token},
	}

	req := httptest.NewRequest("POST", "/admin/tables/handlers-column/column", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Value   string `json:"value"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !resp.Success || !strings.Contains(resp.Data.Value, "7") {
		t.Errorf("response = %+v, want success with formatted value", resp)
	}
	if updated["items_count"] != "7" {
		t.Errorf("Update callback got %v, want items_count=7", updated)
	}
}

func TestColumnUpdateRejectsBadNonceAndNonEditable(t *testing.T) {
	cfg := ordersConfig("handlers-column-guard")
	cfg.Columns["items_count"] = table.Column{Editable: true}
	invoked := false
	cfg.Callbacks.Update = func(ctx context.Context, id, column, value string) (string, error) {
		invoked = true
		return value, nil
	}
	r := newTestRouter(t, cfg)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/admin/tables/handlers-column-guard/column", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(url.Values{"column": {"items_count"}, "item_id": {"1"}, "value": {"7"}, "_nonce": {"bogus"}})
	if w.Code != http.StatusForbidden {
		t.Errorf("bad nonce: status = %d, want 403", w.Code)
	}
	if invoked {
		t.Fatal("Update callback ran despite an invalid nonce")
	}

	token := testNonces.Issue(columnNonceAction("handlers-column-guard", "1"), "admin")
	w = post(url.Values{"column": {"status"}, "item_id": {"1"}, "value": {"x"}, "_nonce": {token}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-editable column: status = %d, want 400", w.Code)
	}
	if invoked {
		t.Error("Update callback ran for a non-editable column")
	}
}

func TestDashboardListsTables(t *testing.T) {
	cfg := ordersConfig("handlers-dashboard")
	cfg.Labels = table.Labels{Singular: "Order", Plural: "Dashboard Orders"}
	r := newTestRouter(t, cfg)

	req := httptest.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, s := range []string{"Dashboard Orders", "/admin/tables/handlers-dashboard"} {
		if !strings.Contains(body, s) {
			t.Errorf("dashboard missing %q", s)
		}
	}
}

func TestListViewPagination(t *testing.T) {
	cfg := ordersConfig("handlers-paging")
	cfg.PerPage = 1
	r := newTestRouter(t, cfg)

	req := httptest.NewRequest("GET", "/admin/tables/handlers-paging?paged=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "Page 2 of 2") {
		t.Errorf("pagination missing, body has %q", firstLine(body))
	}
	if !strings.Contains(body, "Previous") {
		t.Error("page 2 should link back to page 1")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i > 0 {
		return s[:i]
	}
	return s
}
