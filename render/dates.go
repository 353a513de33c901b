/*
dates.go - Agreement date parsing and display formats

PURPOSE:
  Agreement dates arrive as ISO day strings ("2025-09-01") or full
  timestamps. Parsing failures never propagate; callers render the
  masking placeholder or an empty string instead.

SEE ALSO:
  - actions.go: Per-row start/end date cells
  - model.go: Top-level agreement date display
  - firstpayment.go: First payment date arithmetic
*/
package render

import (
	"time"
)

// Display formats. LongDateFormat is used for the top-level agreement
// dates ("1 September 2025"), ShortDateFormat for per-row cells
// ("01/09/2025").
const (
	LongDateFormat  = "2 January 2006"
	ShortDateFormat = "02/01/2006"
	MonthYearFormat = "January 2006"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// ParseAgreementDate parses a wire date string. The second return is
// false when the value is absent or unparseable.
func ParseAgreementDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatAgreementDate renders a wire date in the given display format,
// or "" when the date cannot be parsed.
func FormatAgreementDate(s, format string) string {
	t, ok := ParseAgreementDate(s)
	if !ok {
		return ""
	}
	return t.Format(format)
}
