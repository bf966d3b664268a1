// ABOUTME: Tests for status badge severity and label resolution.
// ABOUTME: Validates override-first ordering and title-cased fallbacks.

package format

import (
	"strings"
	"testing"
)

func TestBadgeClass(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		overrides map[string]Severity
		want      Severity
	}{
		{"known success", "completed", nil, SeveritySuccess},
		{"known warning", "pending", nil, SeverityWarning},
		{"known error", "failed", nil, SeverityError},
		{"known info", "refunded", nil, SeverityInfo},
		{"unknown falls back", "paused", nil, SeverityDefault},
		{"override wins over default map", "paused", map[string]Severity{"paused": SeverityError}, SeverityError},
		{"override wins over known status", "completed", map[string]Severity{"completed": SeverityWarning}, SeverityWarning},
		{"case insensitive", "Completed", nil, SeveritySuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BadgeClass(tt.status, tt.overrides); got != tt.want {
				t.Errorf("BadgeClass(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestBadgeLabel(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		overrides map[string]string
		want      string
	}{
		{"title cased", "completed", nil, "Completed"},
		{"dashes become spaces", "on-hold", nil, "On Hold"},
		{"underscores become spaces", "partially_refunded", nil, "Partially Refunded"},
		{"override wins", "wc-processing", map[string]string{"wc-processing": "Processing"}, "Processing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BadgeLabel(tt.status, tt.overrides); got != tt.want {
				t.Errorf("BadgeLabel(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusBadge(t *testing.T) {
	got := StatusBadge("completed", nil, nil)
	for _, want := range []string{"bg-green-100", ">Completed<"} {
		if !strings.Contains(got, want) {
			t.Errorf("StatusBadge(completed) = %q, missing %q", got, want)
		}
	}

	got = StatusBadge("", nil, nil)
	if !strings.Contains(got, "&mdash;") {
		t.Errorf("StatusBadge(empty) = %q, want placeholder", got)
	}

	got = StatusBadge("paused", map[string]Severity{"paused": SeverityError}, nil)
	if !strings.Contains(got, "bg-red-100") {
		t.Errorf("StatusBadge(paused, override) = %q, want error classes", got)
	}
}
