// ABOUTME: Tests for the list table HTML renderer.
// ABOUTME: Substring checks over generated fragments, no browser needed.

package admin

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/plumline/listtable/auth"
	"github.com/plumline/listtable/format"
	"github.com/plumline/listtable/notice"
	"github.com/plumline/listtable/table"
)

var adminUser = auth.User{Name: "admin", Super: true}

func renderConfig() table.Config {
	cfg := table.Config{
		ID: "orders",
		Labels: table.Labels{
			Singular: "Order",
			Plural:   "Orders",
			NotFound: "No orders yet.",
		},
		Capability: "manage",
		Columns: map[string]table.Column{
			"id":           {},
			"order_number": {},
			"status":       {},
			"total_spent":  {Align: "right"},
		},
		Sortable: []string{"total_spent"},
		RowActions: table.RowActions{
			Custom: []table.Action{
				{ID: "edit", Title: "Edit", URL: "{base}/edit/{id}"},
				{
					ID:          "delete",
					Title:       "Delete",
					Handler:     func(ctx context.Context, id string) error { return nil },
					Nonce:       "orders-delete-{id}",
					Confirm:     "Delete this order?",
					Destructive: true,
				},
			},
		},
		BulkActions: []table.BulkAction{
			{ID: "archive", Title: "Archive", Handler: func(ctx context.Context, ids []string) error { return nil }},
		},
		Filters: []table.Filter{
			{ID: "country", Title: "All countries", Options: []table.Option{
				{Value: "US", Label: "United States"},
				{Value: "DE", Label: "Germany"},
			}},
		},
	}
	normalized, err := table.Normalize(cfg)
	if err != nil {
		panic(err)
	}
	return normalized
}

func renderList(cfg table.Config, rows []table.Row, q table.Query) string {
	return RenderList(cfg, rows, len(rows), map[string]int{"completed": 3, "pending": 1},
		url.Values{}, q, adminUser, testNonces)
}

func TestRenderListTable(t *testing.T) {
	rows := []table.Row{
		table.MapRow{"id": "1", "order_number": "ORD-1", "status": "completed", "total_spent": 1050, "currency": "USD"},
	}
	html := renderList(renderConfig(), rows, table.Query{Page: 1, PerPage: 20})

	want := []string{
		`<table class="min-w-full divide-y divide-gray-200">`,
		"$10.50",
		"bg-green-100",
		`name="ids" value="1"`,
		"data-select-all",
		`action="/admin/tables/orders/bulk"`,
		`name="_nonce"`,
		">Archive</option>",
		"All countries",
		"United States",
		"text-right", // total_spent alignment
	}
	for _, s := range want {
		if !strings.Contains(html, s) {
			t.Errorf("rendered table missing %q", s)
		}
	}
}

func TestRenderListRowActions(t *testing.T) {
	rows := []table.Row{table.MapRow{"id": "42", "status": "pending"}}
	html := renderList(renderConfig(), rows, table.Query{Page: 1, PerPage: 20})

	if !strings.Contains(html, "/admin/tables/orders/edit/42") {
		t.Error("link action missing resolved URL")
	}
	if !strings.Contains(html, "/admin/tables/orders/action/delete?id=42&amp;_nonce=") &&
		!strings.Contains(html, "/admin/tables/orders/action/delete?id=42&_nonce=") {
		t.Error("handler action missing nonce-protected dispatch URL")
	}
	if !strings.Contains(html, "Delete this order?") {
		t.Error("destructive action missing confirmation")
	}
	if !strings.Contains(html, "text-red-600") {
		t.Error("destructive action missing red styling")
	}
}

func TestRenderListHidesActionsWithoutCapability(t *testing.T) {
	rows := []table.Row{table.MapRow{"id": "1", "status": "pending"}}
	cfg := renderConfig()

	html := RenderList(cfg, rows, 1, nil, url.Values{}, table.Query{Page: 1, PerPage: 20},
		auth.User{Name: "bob"}, testNonces)

	if strings.Contains(html, "/action/delete") {
		t.Error("capless user can see dispatch links")
	}
	if strings.Contains(html, "/bulk") {
		t.Error("capless user can see the bulk form")
	}
}

func TestRenderListEmptyState(t *testing.T) {
	html := renderList(renderConfig(), nil, table.Query{Page: 1, PerPage: 20})
	if !strings.Contains(html, "No orders yet.") {
		t.Error("empty state missing the not-found label")
	}
}

func TestRenderListSortHeader(t *testing.T) {
	rows := []table.Row{table.MapRow{"id": "1", "status": "pending"}}
	html := renderList(renderConfig(), rows, table.Query{Page: 1, PerPage: 20, OrderBy: "total_spent", Order: "desc"})

	if !strings.Contains(html, "orderby=total_spent") {
		t.Error("sortable header missing sort link")
	}
	if !strings.Contains(html, "&darr;") {
		t.Error("active descending sort missing indicator")
	}
}

func TestRenderListViewsBar(t *testing.T) {
	html := renderList(renderConfig(), nil, table.Query{Page: 1, PerPage: 20, Status: "pending"})

	for _, s := range []string{"All", "(4)", "Completed", "(3)", "Pending", "(1)", "status=pending"} {
		if !strings.Contains(html, s) {
			t.Errorf("views bar missing %q", s)
		}
	}
	if !strings.Contains(html, "font-semibold") {
		t.Error("current view not highlighted")
	}
}

func TestRenderListEditableCell(t *testing.T) {
	cfg := renderConfig()
	col := cfg.Columns["total_spent"]
	col.Editable = true
	cfg.Columns["total_spent"] = col

	rows := []table.Row{table.MapRow{"id": "1", "total_spent": 1050, "currency": "USD"}}
	html := renderList(cfg, rows, table.Query{Page: 1, PerPage: 20})

	for _, s := range []string{"data-editable", `data-column="total_spent"`, `data-item="1"`, "data-nonce="} {
		if !strings.Contains(html, s) {
			t.Errorf("editable cell missing %q", s)
		}
	}
}

func TestRenderNotice(t *testing.T) {
	cfg := renderConfig()

	tests := []struct {
		name string
		n    *notice.Notice
		want []string
	}{
		{"nil", nil, nil},
		{"success", &notice.Notice{Action: "delete", Success: true, Result: "42"}, []string{"bg-green-50", "Order: delete completed", "42"}},
		{"failure", &notice.Notice{Action: "refund", Success: false}, []string{"bg-red-50", "refund failed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderNotice(cfg, tt.n)
			if tt.n == nil {
				if got != "" {
					t.Errorf("nil notice rendered %q", got)
				}
				return
			}
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("notice missing %q in %q", s, got)
				}
			}
		})
	}
}

func TestRenderListCustomRender(t *testing.T) {
	cfg := renderConfig()
	cfg.Columns["order_number"] = table.Column{
		Title:  "Order",
		Render: func(r table.Row) string { return "<strong>custom</strong>" },
	}

	rows := []table.Row{table.MapRow{"id": "1", "order_number": "ORD-1"}}
	html := renderList(cfg, rows, table.Query{Page: 1, PerPage: 20})

	if !strings.Contains(html, "<strong>custom</strong>") {
		t.Error("custom Render output was not passed through")
	}
}

func TestRenderCellUsesTableBadgeOverrides(t *testing.T) {
	cfg := renderConfig()
	cfg.StatusStyles = map[string]format.Severity{"pending": format.SeverityError}

	rows := []table.Row{table.MapRow{"id": "1", "status": "pending"}}
	html := renderList(cfg, rows, table.Query{Page: 1, PerPage: 20})

	if !strings.Contains(html, "bg-red-100") {
		t.Error("per-table status style override ignored")
	}
}
