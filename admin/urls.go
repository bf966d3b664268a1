// ABOUTME: URL construction and cleanup for list table pages.
// ABOUTME: Builds nonce-protected action links and strips transient params.

package admin

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"

	"github.com/plumline/listtable/notice"
	"github.com/plumline/listtable/table"
)

// transientParams never survive a redirect or get copied into rebuilt links.
var transientParams = []string{"action", "id", "ids", "_nonce", "_ref"}

func tableBasePath(tableID string) string {
	return "/admin/tables/" + url.PathEscape(tableID)
}

// cleanQuery copies query values minus transient and notice parameters.
func cleanQuery(q url.Values) url.Values {
	v := url.Values{}
	for key, vals := range q {
		v[key] = append([]string(nil), vals...)
	}
	for _, p := range transientParams {
		v.Del(p)
	}
	notice.Strip(v)
	return v
}

// cleanListURL is the post-action redirect target: the table's list URL with
// every transient parameter stripped. Keeping paging, sorting, and filters
// intact means the user lands back on the page they acted from.
func cleanListURL(tableID string, q url.Values) string {
	v := cleanQuery(q)
	u := tableBasePath(tableID)
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// redirectURL appends a notice to the clean list URL.
func redirectURL(tableID string, q url.Values, n notice.Notice) string {
	v := cleanQuery(q)
	n.Encode(v)
	return tableBasePath(tableID) + "?" + v.Encode()
}

// actionURL builds the dispatch URL for a handler-backed row action.
func actionURL(tableID string, a table.Action, id, token string) safehtml.URL {
	raw := fmt.Sprintf("%s/action/%s?id=%s&_nonce=%s",
		tableBasePath(tableID), url.PathEscape(a.ID), url.QueryEscape(id), url.QueryEscape(token))
	return safehtml.URLSanitized(raw)
}

// linkURL resolves a link-only action's URL template for one row.
func linkURL(tableID string, a table.Action, id string) safehtml.URL {
	raw := strings.NewReplacer(
		"{base}", tableBasePath(tableID),
		"{table}", url.PathEscape(tableID),
		"{id}", url.PathEscape(id),
	).Replace(a.URL)
	return safehtml.URLSanitized(raw)
}

// nonceAction resolves an action's nonce template for one row id.
func nonceAction(tableID string, a table.Action, id string) string {
	tmpl := a.Nonce
	if tmpl == "" {
		tmpl = "{table}-{action}-{id}"
	}
	return strings.NewReplacer(
		"{table}", tableID,
		"{action}", a.ID,
		"{id}", id,
	).Replace(tmpl)
}

// columnNonceAction is the verification action for inline column updates.
func columnNonceAction(tableID, itemID string) string {
	return tableID + "-column-" + itemID
}

// bulkNonceAction is the verification action for bulk submissions.
func bulkNonceAction(tableID string) string {
	return "bulk-" + tableID
}

// sortURL toggles ordering on a column while preserving the rest of the
// query. Sorting resets paging.
func sortURL(tableID string, q url.Values, column string) safehtml.URL {
	v := cleanQuery(q)
	order := "asc"
	if v.Get("orderby") == column && v.Get("order") != "desc" {
		order = "desc"
	}
	v.Set("orderby", column)
	v.Set("order", order)
	v.Del("paged")
	return safehtml.URLSanitized(tableBasePath(tableID) + "?" + v.Encode())
}

// viewURL selects a status view. The empty status is the "all" view.
func viewURL(tableID string, q url.Values, status string) safehtml.URL {
	v := cleanQuery(q)
	if status == "" {
		v.Del("status")
	} else {
		v.Set("status", status)
	}
	v.Del("paged")
	raw := tableBasePath(tableID)
	if enc := v.Encode(); enc != "" {
		raw += "?" + enc
	}
	return safehtml.URLSanitized(raw)
}

// pageURL jumps to a page of the current view.
func pageURL(tableID string, q url.Values, page int) safehtml.URL {
	v := cleanQuery(q)
	if page <= 1 {
		v.Del("paged")
	} else {
		v.Set("paged", strconv.Itoa(page))
	}
	raw := tableBasePath(tableID)
	if enc := v.Encode(); enc != "" {
		raw += "?" + enc
	}
	return safehtml.URLSanitized(raw)
}
