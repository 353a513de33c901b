/*
schedule.go - Annual payment schedule pivot

PURPOSE:
  Pivots every payment-event line item into a code x calendar-year
  matrix of summed pence. Each row is one code with a cell per distinct
  year plus a row total; a final "Total" row carries per-year and grand
  totals. Years sort ascending, codes sort in natural order (digit runs
  compared numerically, so A2 comes before A10).

  Line items whose referenced item cannot be resolved to a code are
  skipped; they contribute to no row and no total.

SEE ALSO:
  - allocate.go: The per-event lookups used elsewhere; the pivot walks
    line items directly because it needs every event, not just two
  - currency.go: Cell formatting
*/
package render

import (
	"sort"
	"strings"
	"unicode"

	"github.com/warp/agreement-engine/agreement"
)

// codeYears accumulates pence per year for a single code.
type codeYears struct {
	byYear map[int]int64
	total  int64
}

// AnnualScheduleTable builds the code x year payment pivot.
func AnnualScheduleTable(a *agreement.Agreement) Table {
	plan := a.Payment.Normalized()

	byCode := map[string]*codeYears{}
	yearSet := map[int]struct{}{}

	for i := range plan.Payments {
		event := &plan.Payments[i]
		date, ok := ParseAgreementDate(event.PaymentDate)
		if !ok {
			continue
		}
		year := date.Year()

		for _, line := range event.LineItems {
			code := resolveLineItemCode(plan, line)
			if code == "" {
				continue
			}
			years := byCode[code]
			if years == nil {
				years = &codeYears{byYear: map[int]int64{}}
				byCode[code] = years
			}
			years.byYear[year] += line.PaymentPence
			years.total += line.PaymentPence
			yearSet[year] = struct{}{}
		}
	}

	sortedYears := make([]int, 0, len(yearSet))
	for year := range yearSet {
		sortedYears = append(sortedYears, year)
	}
	sort.Ints(sortedYears)

	sortedCodes := make([]string, 0, len(byCode))
	for code := range byCode {
		sortedCodes = append(sortedCodes, code)
	}
	sort.Slice(sortedCodes, func(i, j int) bool { return naturalLess(sortedCodes[i], sortedCodes[j]) })

	data := make([][]Cell, 0, len(sortedCodes)+1)
	yearTotals := make(map[int]int64, len(sortedYears))
	var grandTotal int64

	for _, code := range sortedCodes {
		years := byCode[code]
		row := []Cell{textCell(code)}
		for _, year := range sortedYears {
			value := years.byYear[year]
			row = append(row, textCell(FormatPenceAmount(value)))
			yearTotals[year] += value
		}
		row = append(row, textCell(FormatPenceAmount(years.total)))
		grandTotal += years.total
		data = append(data, row)
	}

	totals := []Cell{textCell("Total")}
	for _, year := range sortedYears {
		totals = append(totals, textCell(FormatPenceAmount(yearTotals[year])))
	}
	totals = append(totals, textCell(FormatPenceAmount(grandTotal)))
	data = append(data, totals)

	headingCells := []Cell{textCell("Code")}
	for _, year := range sortedYears {
		headingCells = append(headingCells, numCell(year))
	}
	headingCells = append(headingCells, textCell("Total payment"))

	return Table{Headings: headingCells, Data: data}
}

// resolveLineItemCode maps a line item back to its item's code, or ""
// when the reference does not resolve.
func resolveLineItemCode(plan agreement.PaymentPlan, line agreement.LineItem) string {
	code := ""
	if item, ok := plan.ParcelItemByID(line.ParcelItemID); ok {
		code = item.Code
	}
	if item, ok := plan.AgreementLevelItemByID(line.AgreementLevelItemID); ok {
		code = item.Code
	}
	return code
}

// =============================================================================
// NATURAL CODE ORDERING
// =============================================================================

// naturalLess compares strings case-insensitively with digit runs
// compared numerically: "A2" < "A10".
func naturalLess(a, b string) bool {
	ar, br := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if unicode.IsDigit(ar[i]) && unicode.IsDigit(br[j]) {
			ni, vi := digitRun(ar, i)
			nj, vj := digitRun(br, j)
			if vi != vj {
				return vi < vj
			}
			i, j = ni, nj
			continue
		}
		if ar[i] != br[j] {
			return ar[i] < br[j]
		}
		i++
		j++
	}
	return len(ar)-i < len(br)-j
}

// digitRun consumes a run of digits starting at i, returning the index
// after the run and its numeric value.
func digitRun(r []rune, i int) (int, int64) {
	var v int64
	for i < len(r) && unicode.IsDigit(r[i]) {
		v = v*10 + int64(r[i]-'0')
		i++
	}
	return i, v
}
