/*
currency.go - Pence-to-display currency formatting

PURPOSE:
  Converts integer pence to GOV.UK-style GBP strings. go-money supplies
  the locale formatting (grouping, symbol, two decimals); on top of that
  sits the GOV.UK simplification of dropping a trailing zero-pence
  decimal: "£75" rather than "£75.00", while "£75.50" stays as is.

  Non-numeric payloads (see agreement.PenceValue) are passed through
  with everything except digits, '.' and '-' stripped. That branch is a
  defensive passthrough for dirty upstream data, not a currency format.

SEE ALSO:
  - agreement/pence.go: The tolerant wire type consumed here
  - payments.go, schedule.go: The main callers
*/
package render

import (
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/warp/agreement-engine/agreement"
)

// FormatPence renders a tolerant pence value for display. Unset values
// render as the empty string.
func FormatPence(v agreement.PenceValue) string {
	switch {
	case !v.IsSet():
		return ""
	case !v.IsNumeric():
		return stripNonNumeric(v.Raw())
	default:
		return FormatPenceAmount(v.Pence())
	}
}

// FormatPenceAmount renders integer pence as a GBP display string with
// the whole-pound ".00" suffix stripped.
func FormatPenceAmount(pence int64) string {
	formatted := money.New(pence, money.GBP).Display()
	if pence%100 == 0 {
		formatted = strings.TrimSuffix(formatted, ".00")
	}
	return formatted
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
