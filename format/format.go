// ABOUTME: Value formatting for list table cells.
// ABOUTME: Turns a detected type plus a raw value into a safe HTML fragment.

package format

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fielder is the read-only accessor the formatter uses to reach sibling
// fields on the row (currency codes, rate type hints). Any row type with a
// Field method satisfies it.
type Fielder interface {
	Field(name string) (any, bool)
}

// Options carries per-cell context for formatting.
type Options struct {
	Column string // column id, used for sibling field lookups
	Styles map[string]Severity
	Labels map[string]string
}

// Currencier lets a row expose its currency directly. Checked before the
// row's currency fields.
type Currencier interface {
	Currency() string
}

var printer = message.NewPrinter(language.English)

// Format renders a raw value as an HTML fragment for the given type. It
// never panics: unrecognized input degrades to escaped text and empty input
// to a placeholder fragment.
func Format(t Type, value any, row Fielder, opts Options) string {
	if isEmpty(value) && t != TypeBoolean {
		return Placeholder()
	}

	switch t {
	case TypeCount:
		return formatCount(value)
	case TypePrice:
		return formatPrice(value, row, opts.Column)
	case TypeRate:
		return formatRate(value, row, opts.Column)
	case TypeBoolean:
		return formatBoolean(value, opts.Column)
	case TypeStatus:
		return StatusBadge(toString(value), opts.Styles, opts.Labels)
	case TypeURL:
		return formatURL(toString(value), opts.Column)
	case TypeDate:
		return formatDate(value)
	case TypePercentage:
		return formatPercentage(value)
	case TypeCountry:
		return formatCountry(toString(value))
	case TypeDuration:
		return formatDuration(value)
	case TypeFileSize:
		return formatFileSize(value)
	case TypeCode:
		return fmt.Sprintf(`<code class="px-1.5 py-0.5 rounded bg-gray-100 text-xs font-mono">%s</code>`,
			html.EscapeString(toString(value)))
	default:
		return html.EscapeString(toString(value))
	}
}

// Placeholder is the empty-value fragment.
func Placeholder() string {
	return `<span class="text-gray-400">&mdash;</span>`
}

// formatCount locale-formats a non-negative count. -1 means unlimited by
// convention and renders as an infinity glyph; 0 renders as the placeholder.
func formatCount(value any) string {
	n, ok := toInt64(value)
	if !ok {
		return html.EscapeString(toString(value))
	}
	switch {
	case n == -1:
		return `<span title="Unlimited">&infin;</span>`
	case n == 0:
		return Placeholder()
	default:
		return html.EscapeString(printer.Sprint(number.Decimal(n)))
	}
}

// minorUnits maps zero-decimal currencies; everything else uses two.
var minorUnits = map[string]int{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "MGA": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0,
	"VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
}

var currencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥",
	"AUD": "A$", "CAD": "C$", "NZD": "NZ$", "CHF": "CHF ",
	"SEK": "kr ", "NOK": "kr ", "DKK": "kr ", "INR": "₹",
	"BRL": "R$", "MXN": "MX$", "ZAR": "R ", "KRW": "₩",
	"VND": "₫", "PLN": "zł ", "CZK": "Kč ",
}

// formatPrice renders an integer amount in the smallest currency unit. The
// currency code comes from the row: a Currency method, then a "currency"
// field, then "{column}_currency", then USD.
func formatPrice(value any, row Fielder, column string) string {
	units, ok := toInt64(value)
	if !ok {
		return html.EscapeString(toString(value))
	}
	code := currencyCode(row, column)

	digits, known := minorUnits[code]
	if !known {
		digits = 2
	}
	amount := float64(units)
	for i := 0; i < digits; i++ {
		amount /= 10
	}

	sym, ok := currencySymbols[code]
	if !ok {
		sym = code + " "
	}

	formatted := printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
	return html.EscapeString(sym + formatted)
}

func currencyCode(row Fielder, column string) string {
	if c, ok := row.(Currencier); ok {
		if code := strings.TrimSpace(c.Currency()); code != "" {
			return strings.ToUpper(code)
		}
	}
	if row != nil {
		if v, ok := row.Field("currency"); ok {
			if code := strings.TrimSpace(toString(v)); code != "" {
				return strings.ToUpper(code)
			}
		}
		if column != "" {
			if v, ok := row.Field(column + "_currency"); ok {
				if code := strings.TrimSpace(toString(v)); code != "" {
					return strings.ToUpper(code)
				}
			}
		}
	}
	return "USD"
}

// formatRate renders either a percentage or a flat currency amount. The
// sibling "{column}_type" field decides; without it, values inside [0,100]
// are treated as percentages.
func formatRate(value any, row Fielder, column string) string {
	f, ok := toFloat64(value)
	if !ok {
		return html.EscapeString(toString(value))
	}

	if row != nil && column != "" {
		if v, ok := row.Field(column + "_type"); ok {
			switch strings.ToLower(toString(v)) {
			case "flat", "fixed", "amount", "currency":
				return formatPrice(value, row, column)
			case "percent", "percentage", "rate":
				return formatPercentage(value)
			}
		}
	}

	if f >= 0 && f <= 100 {
		return formatPercentage(value)
	}
	return formatPrice(value, row, column)
}

func formatPercentage(value any) string {
	f, ok := toFloat64(value)
	if !ok {
		return html.EscapeString(toString(value))
	}
	return html.EscapeString(strconv.FormatFloat(f, 'f', -1, 64) + "%")
}

// formatBoolean renders yes/no marks, except the test-mode columns which get
// Test/Live badges instead.
func formatBoolean(value any, column string) string {
	truthy := toBool(value)
	if column == "is_test" || column == "test_mode" {
		if truthy {
			return badge("Test", SeverityWarning)
		}
		return badge("Live", SeveritySuccess)
	}
	if truthy {
		return `<span class="text-green-600" title="Yes">&#10003;</span>`
	}
	return `<span class="text-gray-400" title="No">&#10007;</span>`
}

// formatURL links the value. Image-suggesting column names render a
// thumbnail instead of the link text.
func formatURL(raw string, column string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Placeholder()
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return html.EscapeString(raw)
	}
	href := html.EscapeString(raw)

	if imageColumn(column) {
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener"><img src="%s" class="h-8 w-8 rounded object-cover" alt=""></a>`,
			href, href)
	}

	text := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	text = strings.TrimSuffix(text, "/")
	return fmt.Sprintf(`<a href="%s" class="text-blue-600 hover:text-blue-900" target="_blank" rel="noopener">%s</a>`,
		href, html.EscapeString(text))
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatDate(value any) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return Placeholder()
		}
		t = *v
	case int64:
		t = time.Unix(v, 0)
	case int:
		t = time.Unix(int64(v), 0)
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				t = parsed
				break
			}
		}
		if t.IsZero() {
			return html.EscapeString(v)
		}
	default:
		return html.EscapeString(toString(value))
	}

	if t.IsZero() {
		return Placeholder()
	}
	return fmt.Sprintf(`<span title="%s">%s</span>`,
		html.EscapeString(humanize.Time(t)), html.EscapeString(t.Format("Jan 2, 2006")))
}

func formatCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	region, err := language.ParseRegion(code)
	if err != nil {
		return html.EscapeString(code)
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return html.EscapeString(code)
	}
	return fmt.Sprintf(`<span title="%s">%s</span>`,
		html.EscapeString(code), html.EscapeString(name))
}

func formatDuration(value any) string {
	secs, ok := toInt64(value)
	if !ok {
		if d, isDur := value.(time.Duration); isDur {
			secs = int64(d.Seconds())
		} else {
			return html.EscapeString(toString(value))
		}
	}
	if secs < 0 {
		return Placeholder()
	}

	d := time.Duration(secs) * time.Second
	var parts []string
	if h := int(d.Hours()); h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m := int(d.Minutes()) % 60; m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s := int(d.Seconds()) % 60; s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return html.EscapeString(strings.Join(parts, " "))
}

func formatFileSize(value any) string {
	n, ok := toInt64(value)
	if !ok || n < 0 {
		return html.EscapeString(toString(value))
	}
	return html.EscapeString(humanize.Bytes(uint64(n)))
}

// Value coercion helpers. Row items arrive as typed structs, sql scans, or
// decoded JSON, so numeric values show up in several shapes.

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func toString(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "1" || s == "yes" || s == "on"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}
