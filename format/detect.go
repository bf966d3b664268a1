// ABOUTME: Column type detection from column naming conventions.
// ABOUTME: Maps a column name to a semantic type using ordered match rules.

package format

import "strings"

// Type is the semantic type of a column, driving how its values render.
type Type string

const (
	TypeDate       Type = "date"
	TypePrice      Type = "price"
	TypeStatus     Type = "status"
	TypeBoolean    Type = "boolean"
	TypeURL        Type = "url"
	TypeCode       Type = "code"
	TypePercentage Type = "percentage"
	TypeRate       Type = "rate"
	TypeCount      Type = "count"
	TypeCountry    Type = "country"
	TypeDuration   Type = "duration"
	TypeFileSize   Type = "filesize"
)

// rule matches a column name against exact, prefix, suffix, and substring
// sets. Empty sets are skipped.
type rule struct {
	t        Type
	exact    []string
	prefixes []string
	suffixes []string
	contains []string
}

// detectRules is evaluated in order and the first match wins. The order is
// load-bearing: status names resolve before generic substring rules, and the
// boolean prefixes resolve before anything that could overlap them (so
// "is_featured" is boolean, not a substring match on a later rule).
var detectRules = []rule{
	{
		t:        TypeStatus,
		exact:    []string{"status", "state", "order_status", "payment_status", "subscription_status"},
		suffixes: []string{"_status", "_state"},
	},
	{
		t:        TypeBoolean,
		exact:    []string{"enabled", "disabled", "active", "featured", "verified", "confirmed", "test_mode"},
		prefixes: []string{"is_", "has_", "can_"},
	},
	{
		t:        TypeDate,
		exact:    []string{"date", "created", "modified", "updated", "registered", "expiry", "expiration"},
		prefixes: []string{"date_", "expires_"},
		suffixes: []string{"_date", "_at", "_on", "_until"},
		contains: []string{"expir"},
	},
	{
		t:        TypeRate,
		exact:    []string{"rate", "discount", "commission"},
		suffixes: []string{"_rate", "_discount", "_commission"},
	},
	{
		t:        TypePrice,
		exact:    []string{"price", "amount", "total", "subtotal", "revenue", "earnings", "balance", "fee", "cost", "refunded"},
		prefixes: []string{"price_", "amount_"},
		suffixes: []string{"_price", "_amount", "_total", "_subtotal", "_spent", "_earned", "_fee", "_cost", "_revenue"},
	},
	{
		t:        TypePercentage,
		exact:    []string{"percentage", "percent"},
		suffixes: []string{"_percentage", "_percent", "_pct"},
	},
	{
		t:        TypeFileSize,
		exact:    []string{"filesize", "file_size", "size"},
		suffixes: []string{"_size", "_bytes"},
	},
	{
		t:        TypeDuration,
		exact:    []string{"duration", "elapsed"},
		suffixes: []string{"_duration", "_elapsed", "_seconds"},
	},
	{
		t:        TypeCount,
		exact:    []string{"count", "quantity", "qty", "stock", "downloads", "uses", "items", "activations"},
		suffixes: []string{"_count", "_limit", "_uses", "_quantity", "_downloads", "_items"},
	},
	{
		t:        TypeCountry,
		exact:    []string{"country", "country_code"},
		suffixes: []string{"_country"},
	},
	{
		t:        TypeCode,
		exact:    []string{"code", "coupon", "coupon_code", "sku", "slug", "token", "license_key"},
		suffixes: []string{"_code", "_key", "_token", "_sku", "_slug"},
	},
	{
		t:        TypeURL,
		exact:    []string{"url", "link", "website", "image", "avatar", "thumbnail", "logo"},
		suffixes: []string{"_url", "_link", "_website", "_image", "_avatar", "_thumbnail", "_logo"},
		contains: []string{"image", "avatar", "thumbnail"},
	},
}

// Detect infers a semantic type from a column name, or returns "" when no
// rule matches and the caller should fall back to plain text.
func Detect(column string) Type {
	name := strings.ToLower(strings.TrimSpace(column))
	if name == "" {
		return ""
	}

	for _, r := range detectRules {
		if r.matches(name) {
			return r.t
		}
	}
	return ""
}

func (r rule) matches(name string) bool {
	for _, e := range r.exact {
		if name == e {
			return true
		}
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, s := range r.suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	for _, c := range r.contains {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

// imageColumn reports whether a url-typed column should render as a
// thumbnail rather than a text link.
func imageColumn(name string) bool {
	name = strings.ToLower(name)
	for _, hint := range []string{"image", "avatar", "thumbnail", "logo"} {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
