// ABOUTME: HTML renderer for registered list tables.
// ABOUTME: Builds Tailwind table markup from a Config plus one page of rows.

package admin

import (
	"fmt"
	"html"
	"net/url"
	"sort"
	"strings"

	"github.com/plumline/listtable/auth"
	"github.com/plumline/listtable/format"
	"github.com/plumline/listtable/nonce"
	"github.com/plumline/listtable/notice"
	"github.com/plumline/listtable/table"
)

// renderContext carries everything one page render needs.
type renderContext struct {
	cfg    table.Config
	query  url.Values
	q      table.Query
	user   auth.User
	nonces *nonce.Service
}

// RenderList generates the full list fragment: views bar, filter form, bulk
// form wrapping the table, and pagination.
func RenderList(cfg table.Config, rows []table.Row, total int, counts map[string]int, query url.Values, q table.Query, user auth.User, nonces *nonce.Service) string {
	rc := renderContext{cfg: cfg, query: query, q: q, user: user, nonces: nonces}

	var sb strings.Builder
	sb.WriteString(rc.renderViews(counts))
	sb.WriteString(rc.renderFilters())

	bulk := rc.visibleBulkActions()
	if len(bulk) > 0 {
		sb.WriteString(fmt.Sprintf(`<form method="post" action="%s/bulk">`, tableBasePath(cfg.ID)))
		sb.WriteString(fmt.Sprintf(`<input type="hidden" name="_nonce" value="%s">`,
			html.EscapeString(nonces.Issue(bulkNonceAction(cfg.ID), user.Name))))
		sb.WriteString(rc.renderBulkBar(bulk))
	}

	sb.WriteString(`<div class="bg-white rounded-lg shadow overflow-x-auto">`)
	sb.WriteString(rc.renderTable(rows, len(bulk) > 0))
	sb.WriteString(`</div>`)

	if len(bulk) > 0 {
		sb.WriteString(`</form>`)
	}

	sb.WriteString(rc.renderPagination(total))
	return sb.String()
}

// RenderNotice generates the outcome banner for a decoded notice.
func RenderNotice(cfg table.Config, n *notice.Notice) string {
	if n == nil {
		return ""
	}
	singular := cfg.Labels.Singular
	if singular == "" {
		singular = "Item"
	}
	classes := "bg-green-50 border-green-200 text-green-800"
	outcome := "completed"
	if !n.Success {
		classes = "bg-red-50 border-red-200 text-red-800"
		outcome = "failed"
	}
	message := fmt.Sprintf("%s: %s %s.", singular, actionLabel(n.Action), outcome)
	if n.Result != "" {
		message = fmt.Sprintf("%s (%s)", strings.TrimSuffix(message, "."), html.EscapeString(n.Result)) + "."
	}
	return fmt.Sprintf(`<div class="mb-4 px-4 py-3 rounded-lg border %s">%s</div>`,
		classes, html.EscapeString(message))
}

func actionLabel(action string) string {
	return strings.ReplaceAll(strings.ReplaceAll(action, "_", " "), "-", " ")
}

func (rc renderContext) renderTable(rows []table.Row, withBulk bool) string {
	var sb strings.Builder

	sb.WriteString(`<table class="min-w-full divide-y divide-gray-200">`)
	sb.WriteString(`<thead class="bg-gray-50"><tr>`)

	if withBulk {
		sb.WriteString(`<th class="px-4 py-3 w-8"><input type="checkbox" data-select-all class="rounded border-gray-300"></th>`)
	}

	sortable := rc.cfg.SortableSet()
	for _, colID := range rc.cfg.ColumnOrder {
		col, ok := rc.cfg.Columns[colID]
		if !ok {
			continue
		}
		sb.WriteString(rc.renderHeaderCell(colID, col, sortable[colID]))
	}

	actions := rc.visibleRowActions()
	if len(actions) > 0 {
		sb.WriteString(`<th class="px-6 py-3 text-right text-xs font-medium text-gray-500 uppercase">Actions</th>`)
	}

	sb.WriteString(`</tr></thead>`)
	sb.WriteString(`<tbody class="bg-white divide-y divide-gray-200">`)

	if len(rows) == 0 {
		span := len(rc.cfg.ColumnOrder) + len(actions)
		if withBulk {
			span++
		}
		notFound := rc.cfg.Labels.NotFound
		if notFound == "" {
			notFound = "No items found."
		}
		sb.WriteString(fmt.Sprintf(`<tr><td colspan="%d" class="px-6 py-12 text-center text-sm text-gray-500">%s</td></tr>`,
			span, html.EscapeString(notFound)))
	}

	for _, row := range rows {
		id := table.RowID(row)
		sb.WriteString(`<tr class="hover:bg-gray-50">`)

		if withBulk {
			sb.WriteString(fmt.Sprintf(`<td class="px-4 py-4"><input type="checkbox" name="ids" value="%s" class="rounded border-gray-300"></td>`,
				html.EscapeString(id)))
		}

		for _, colID := range rc.cfg.ColumnOrder {
			col, ok := rc.cfg.Columns[colID]
			if !ok {
				continue
			}
			sb.WriteString(rc.renderCell(colID, col, row, id))
		}

		if len(actions) > 0 {
			sb.WriteString(`<td class="px-6 py-4 whitespace-nowrap text-right text-sm space-x-3">`)
			sb.WriteString(rc.renderRowActions(actions, id))
			sb.WriteString(`</td>`)
		}

		sb.WriteString(`</tr>`)
	}

	sb.WriteString(`</tbody></table>`)
	return sb.String()
}

func (rc renderContext) renderHeaderCell(colID string, col table.Column, sortable bool) string {
	align := "text-left"
	switch col.Align {
	case "right":
		align = "text-right"
	case "center":
		align = "text-center"
	}

	attrs := ""
	if col.Width != "" {
		attrs = fmt.Sprintf(` style="width:%s"`, html.EscapeString(col.Width))
	}

	label := html.EscapeString(col.Title)
	if sortable {
		indicator := ""
		if rc.q.OrderBy == colID {
			if rc.q.Order == "desc" {
				indicator = ` <span aria-hidden="true">&darr;</span>`
			} else {
				indicator = ` <span aria-hidden="true">&uarr;</span>`
			}
		}
		label = fmt.Sprintf(`<a href="%s" class="hover:text-gray-700">%s%s</a>`,
			sortURL(rc.cfg.ID, rc.query, colID), label, indicator)
	}

	return fmt.Sprintf(`<th class="px-6 py-3 %s text-xs font-medium text-gray-500 uppercase"%s>%s</th>`,
		align, attrs, label)
}

func (rc renderContext) renderCell(colID string, col table.Column, row table.Row, id string) string {
	var fragment string
	if col.Render != nil {
		fragment = col.Render(row)
	} else {
		value, _ := row.Field(colID)
		fragment = format.Format(col.Type, value, row, format.Options{
			Column: colID,
			Styles: rc.cfg.StatusStyles,
			Labels: rc.cfg.StatusLabels,
		})
	}

	align := "text-left"
	switch col.Align {
	case "right":
		align = "text-right"
	case "center":
		align = "text-center"
	}
	classes := "px-6 py-4 whitespace-nowrap text-sm text-gray-900 " + align
	if col.Class != "" {
		classes += " " + col.Class
	}

	if col.Editable && rc.user.Can(rc.cfg.Capability) {
		token := rc.nonces.Issue(columnNonceAction(rc.cfg.ID, id), rc.user.Name)
		return fmt.Sprintf(`<td class="%s" data-editable data-table="%s" data-column="%s" data-item="%s" data-nonce="%s">%s</td>`,
			html.EscapeString(classes),
			html.EscapeString(rc.cfg.ID),
			html.EscapeString(colID),
			html.EscapeString(id),
			html.EscapeString(token),
			fragment)
	}

	return fmt.Sprintf(`<td class="%s">%s</td>`, html.EscapeString(classes), fragment)
}

// visibleRowActions filters the expanded action list by the user's
// capabilities.
func (rc renderContext) visibleRowActions() []table.Action {
	var actions []table.Action
	for _, a := range rc.cfg.RowActions.Custom {
		capability := a.Capability
		if capability == "" {
			capability = rc.cfg.Capability
		}
		if rc.user.Can(capability) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (rc renderContext) visibleBulkActions() []table.BulkAction {
	var actions []table.BulkAction
	for _, b := range rc.cfg.BulkActions {
		capability := b.Capability
		if capability == "" {
			capability = rc.cfg.Capability
		}
		if rc.user.Can(capability) {
			actions = append(actions, b)
		}
	}
	return actions
}

func (rc renderContext) renderRowActions(actions []table.Action, id string) string {
	var sb strings.Builder
	for _, a := range actions {
		classes := "text-blue-600 hover:text-blue-800"
		if a.Destructive {
			classes = "text-red-600 hover:text-red-800"
		}

		confirm := ""
		if a.Confirm != "" {
			confirm = fmt.Sprintf(` onclick="return confirm('%s')"`,
				html.EscapeString(strings.ReplaceAll(a.Confirm, "'", "\\'")))
		}

		var href string
		if a.Handler != nil {
			token := rc.nonces.Issue(nonceAction(rc.cfg.ID, a, id), rc.user.Name)
			href = actionURL(rc.cfg.ID, a, id, token).String()
		} else {
			href = linkURL(rc.cfg.ID, a, id).String()
		}

		sb.WriteString(fmt.Sprintf(`<a href="%s" class="%s"%s>%s</a>`,
			href, classes, confirm, html.EscapeString(a.Title)))
	}
	return sb.String()
}

// renderViews builds the status views bar. Counts come from
// Callbacks.GetCounts; statuses without a count still render when listed in
// cfg.Views.
func (rc renderContext) renderViews(counts map[string]int) string {
	if len(counts) == 0 && len(rc.cfg.Views) == 0 {
		return ""
	}

	statuses := rc.cfg.Views
	if len(statuses) == 0 {
		statuses = make([]string, 0, len(counts))
		for status := range counts {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	var sb strings.Builder
	sb.WriteString(`<div class="mb-4 flex flex-wrap gap-x-2 text-sm">`)
	sb.WriteString(rc.renderViewLink("", "All", total))
	for _, status := range statuses {
		sb.WriteString(`<span class="text-gray-300">|</span>`)
		sb.WriteString(rc.renderViewLink(status, format.BadgeLabel(status, rc.cfg.StatusLabels), counts[status]))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func (rc renderContext) renderViewLink(status, label string, count int) string {
	classes := "text-blue-600 hover:text-blue-800"
	if rc.q.Status == status {
		classes = "font-semibold text-gray-900"
	}
	return fmt.Sprintf(`<a href="%s" class="%s">%s <span class="text-gray-500">(%d)</span></a>`,
		viewURL(rc.cfg.ID, rc.query, status), classes, html.EscapeString(label), count)
}

// renderFilters builds the search box and dropdown filters as one GET form
// submitting back to the list URL.
func (rc renderContext) renderFilters() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<form method="get" action="%s" class="mb-4 flex flex-wrap items-center gap-2">`,
		tableBasePath(rc.cfg.ID)))

	// Preserve sorting across filter submissions.
	if rc.q.OrderBy != "" {
		sb.WriteString(fmt.Sprintf(`<input type="hidden" name="orderby" value="%s"><input type="hidden" name="order" value="%s">`,
			html.EscapeString(rc.q.OrderBy), html.EscapeString(rc.q.Order)))
	}

	search := rc.cfg.Labels.Search
	if search == "" {
		search = "Search"
	}
	sb.WriteString(fmt.Sprintf(`<input type="search" name="s" value="%s" placeholder="%s" class="rounded border-gray-300 shadow-sm px-3 py-2 border text-sm">`,
		html.EscapeString(rc.q.Search), html.EscapeString(search)))

	for _, f := range rc.cfg.Filters {
		sb.WriteString(fmt.Sprintf(`<select name="%s" class="rounded border-gray-300 shadow-sm px-3 py-2 border text-sm">`,
			html.EscapeString(f.ID)))
		sb.WriteString(fmt.Sprintf(`<option value="">%s</option>`, html.EscapeString(f.Title)))
		selected := rc.q.Filters[f.ID]
		for _, opt := range f.Options {
			attr := ""
			if opt.Value == selected && opt.Value != "" {
				attr = " selected"
			}
			sb.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`,
				html.EscapeString(opt.Value), attr, html.EscapeString(opt.Label)))
		}
		sb.WriteString(`</select>`)
	}

	sb.WriteString(`<button type="submit" class="px-4 py-2 bg-white border border-gray-300 rounded shadow-sm text-sm hover:bg-gray-50">Filter</button>`)
	sb.WriteString(`</form>`)
	return sb.String()
}

func (rc renderContext) renderBulkBar(bulk []table.BulkAction) string {
	var sb strings.Builder
	sb.WriteString(`<div class="mb-4 flex items-center gap-2">`)
	sb.WriteString(`<select name="action" class="rounded border-gray-300 shadow-sm px-3 py-2 border text-sm">`)
	sb.WriteString(`<option value="">Bulk actions</option>`)
	for _, b := range bulk {
		sb.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`,
			html.EscapeString(b.ID), html.EscapeString(b.Title)))
	}
	sb.WriteString(`</select>`)
	sb.WriteString(`<button type="submit" class="px-4 py-2 bg-white border border-gray-300 rounded shadow-sm text-sm hover:bg-gray-50">Apply</button>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func (rc renderContext) renderPagination(total int) string {
	perPage := rc.q.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	pages := (total + perPage - 1) / perPage
	if pages <= 1 {
		return fmt.Sprintf(`<div class="mt-4 text-sm text-gray-500">%d items</div>`, total)
	}

	page := rc.q.Page
	var sb strings.Builder
	sb.WriteString(`<div class="mt-4 flex items-center justify-between text-sm">`)
	sb.WriteString(fmt.Sprintf(`<span class="text-gray-500">%d items</span>`, total))
	sb.WriteString(`<div class="space-x-2">`)

	if page > 1 {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="px-3 py-1 border rounded hover:bg-gray-50">&laquo; Previous</a>`,
			pageURL(rc.cfg.ID, rc.query, page-1)))
	}
	sb.WriteString(fmt.Sprintf(`<span class="text-gray-500">Page %d of %d</span>`, page, pages))
	if page < pages {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="px-3 py-1 border rounded hover:bg-gray-50">Next &raquo;</a>`,
			pageURL(rc.cfg.ID, rc.query, page+1)))
	}

	sb.WriteString(`</div></div>`)
	return sb.String()
}
