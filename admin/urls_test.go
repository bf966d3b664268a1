// ABOUTME: Tests for URL building and transient parameter stripping.
// ABOUTME: Covers redirect targets, sort toggling, and nonce action names.

package admin

import (
	"net/url"
	"strings"
	"testing"

	"github.com/plumline/listtable/notice"
	"github.com/plumline/listtable/table"
)

func TestCleanListURLStripsTransients(t *testing.T) {
	q := url.Values{
		"paged":       {"2"},
		"orderby":     {"total_spent"},
		"action":      {"delete"},
		"id":          {"42"},
		"ids":         {"1", "2"},
		"_nonce":      {"abc"},
		"_ref":        {"somewhere"},
		"notice":      {"delete"},
		"notice_type": {"success"},
		"result":      {"42"},
	}

	got := cleanListURL("orders", q)

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("bad URL %q: %v", got, err)
	}
	kept := parsed.Query()
	if kept.Get("paged") != "2" || kept.Get("orderby") != "total_spent" {
		t.Errorf("clean URL dropped persistent params: %q", got)
	}
	for _, p := range append([]string{"action", "id", "ids", "_nonce", "_ref"}, notice.Params...) {
		if kept.Has(p) {
			t.Errorf("clean URL kept transient param %q: %q", p, got)
		}
	}
}

func TestCleanListURLNoQuery(t *testing.T) {
	if got := cleanListURL("orders", url.Values{}); got != "/admin/tables/orders" {
		t.Errorf("cleanListURL = %q, want bare list path", got)
	}
}

func TestSortURLToggles(t *testing.T) {
	q := url.Values{"paged": {"3"}}

	first := sortURL("orders", q, "total_spent").String()
	if !strings.Contains(first, "order=asc") || !strings.Contains(first, "orderby=total_spent") {
		t.Errorf("first sort = %q, want ascending", first)
	}
	if strings.Contains(first, "paged=") {
		t.Error("sorting should reset paging")
	}

	q = url.Values{"orderby": {"total_spent"}, "order": {"asc"}}
	second := sortURL("orders", q, "total_spent").String()
	if !strings.Contains(second, "order=desc") {
		t.Errorf("second sort = %q, want descending", second)
	}

	other := sortURL("orders", q, "status").String()
	if !strings.Contains(other, "order=asc") || !strings.Contains(other, "orderby=status") {
		t.Errorf("sorting a new column = %q, want ascending", other)
	}
}

func TestViewURL(t *testing.T) {
	q := url.Values{"paged": {"5"}, "s": {"alice"}}

	got := viewURL("orders", q, "pending").String()
	if !strings.Contains(got, "status=pending") || !strings.Contains(got, "s=alice") {
		t.Errorf("view URL = %q, want status with search kept", got)
	}
	if strings.Contains(got, "paged=") {
		t.Error("switching views should reset paging")
	}

	all := viewURL("orders", url.Values{"status": {"pending"}}, "").String()
	if strings.Contains(all, "status=") {
		t.Errorf("all view = %q, want no status", all)
	}
}

func TestNonceActionTemplates(t *testing.T) {
	tests := []struct {
		name   string
		action table.Action
		id     string
		want   string
	}{
		{"default template", table.Action{ID: "refund"}, "42", "orders-refund-42"},
		{"explicit template", table.Action{ID: "sync", Nonce: "custom-{id}"}, "7", "custom-7"},
		{"table placeholder", table.Action{ID: "x", Nonce: "{table}:{action}:{id}"}, "9", "orders:x:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nonceAction("orders", tt.action, tt.id); got != tt.want {
				t.Errorf("nonceAction = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionURLEscapes(t *testing.T) {
	a := table.Action{ID: "refund"}
	got := actionURL("orders", a, "a&b", "tok").String()
	if strings.Contains(got, "a&b") {
		t.Errorf("action URL did not escape the id: %q", got)
	}
	if !strings.HasPrefix(got, "/admin/tables/orders/action/refund?") {
		t.Errorf("action URL = %q, want dispatch path", got)
	}
}

func TestLinkURLTemplate(t *testing.T) {
	a := table.Action{ID: "edit", URL: "{base}/edit/{id}"}
	if got := linkURL("orders", a, "42").String(); got != "/admin/tables/orders/edit/42" {
		t.Errorf("link URL = %q", got)
	}
}

func TestLinkURLSanitizesScheme(t *testing.T) {
	a := table.Action{ID: "evil", URL: "javascript:alert(1)"}
	got := linkURL("orders", a, "42").String()
	if strings.HasPrefix(got, "javascript:") {
		t.Errorf("unsafe scheme survived: %q", got)
	}
}
