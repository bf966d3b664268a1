// ABOUTME: Status badge resolution for list table cells.
// ABOUTME: Maps status strings to severity classes and display labels.

package format

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity is the visual weight of a status badge.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityDefault Severity = "default"
)

// severityClasses maps each severity to its badge CSS classes.
var severityClasses = map[Severity]string{
	SeveritySuccess: "bg-green-100 text-green-800",
	SeverityWarning: "bg-yellow-100 text-yellow-800",
	SeverityError:   "bg-red-100 text-red-800",
	SeverityInfo:    "bg-blue-100 text-blue-800",
	SeverityDefault: "bg-gray-100 text-gray-800",
}

// defaultStatusStyles classifies the statuses commonly produced by order,
// subscription, payment, and licensing data. Anything not listed resolves to
// SeverityDefault.
var defaultStatusStyles = map[string]Severity{
	// success
	"active":     SeveritySuccess,
	"approved":   SeveritySuccess,
	"complete":   SeveritySuccess,
	"completed":  SeveritySuccess,
	"confirmed":  SeveritySuccess,
	"connected":  SeveritySuccess,
	"delivered":  SeveritySuccess,
	"enabled":    SeveritySuccess,
	"live":       SeveritySuccess,
	"open":       SeveritySuccess,
	"paid":       SeveritySuccess,
	"publish":    SeveritySuccess,
	"published":  SeveritySuccess,
	"shipped":    SeveritySuccess,
	"subscribed": SeveritySuccess,
	"success":    SeveritySuccess,
	"successful": SeveritySuccess,
	"valid":      SeveritySuccess,
	"verified":   SeveritySuccess,

	// warning
	"awaiting":           SeverityWarning,
	"expiring":           SeverityWarning,
	"in-progress":        SeverityWarning,
	"in_progress":        SeverityWarning,
	"low-stock":          SeverityWarning,
	"on-hold":            SeverityWarning,
	"on_hold":            SeverityWarning,
	"partially-refunded": SeverityWarning,
	"partially_refunded": SeverityWarning,
	"pending":            SeverityWarning,
	"processing":         SeverityWarning,
	"renewal-due":        SeverityWarning,
	"retrying":           SeverityWarning,
	"scheduled":          SeverityWarning,
	"trialing":           SeverityWarning,

	// error
	"abandoned":    SeverityError,
	"blocked":      SeverityError,
	"canceled":     SeverityError,
	"cancelled":    SeverityError,
	"declined":     SeverityError,
	"disconnected": SeverityError,
	"error":        SeverityError,
	"expired":      SeverityError,
	"failed":       SeverityError,
	"failure":      SeverityError,
	"fraud":        SeverityError,
	"invalid":      SeverityError,
	"overdue":      SeverityError,
	"rejected":     SeverityError,
	"revoked":      SeverityError,
	"suspended":    SeverityError,
	"void":         SeverityError,

	// info
	"archived": SeverityInfo,
	"imported": SeverityInfo,
	"migrated": SeverityInfo,
	"new":      SeverityInfo,
	"partial":  SeverityInfo,
	"refunded": SeverityInfo,
	"updated":  SeverityInfo,
	"upgraded": SeverityInfo,
}

var titleCaser = cases.Title(language.English)

// BadgeClass resolves a status to a severity. Overrides win over the default
// map; unknown statuses resolve to SeverityDefault.
func BadgeClass(status string, overrides map[string]Severity) Severity {
	key := strings.ToLower(strings.TrimSpace(status))
	if s, ok := overrides[key]; ok {
		return s
	}
	if s, ok := defaultStatusStyles[key]; ok {
		return s
	}
	return SeverityDefault
}

// BadgeLabel resolves a status to its display label. Overrides win; otherwise
// separators become spaces and the result is title-cased.
func BadgeLabel(status string, overrides map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(status))
	if label, ok := overrides[key]; ok {
		return label
	}
	label := strings.NewReplacer("-", " ", "_", " ").Replace(key)
	return titleCaser.String(label)
}

// StatusBadge renders a status as a badge fragment.
func StatusBadge(status string, styles map[string]Severity, labels map[string]string) string {
	if strings.TrimSpace(status) == "" {
		return Placeholder()
	}
	severity := BadgeClass(status, styles)
	return badge(BadgeLabel(status, labels), severity)
}

func badge(label string, severity Severity) string {
	classes, ok := severityClasses[severity]
	if !ok {
		classes = severityClasses[SeverityDefault]
	}
	return fmt.Sprintf(`<span class="inline-flex px-2 py-0.5 rounded-full text-xs font-medium %s">%s</span>`,
		classes, html.EscapeString(label))
}
