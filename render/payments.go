/*
payments.go - Summary of payments table

PURPOSE:
  One row per parcel item and one per agreement-level item, each with
  the item's annual payment rate, its (possibly prorated) first
  payment, its steady-state subsequent payment, and its annual value.
  Rows sort ascending by code; the totals row is computed in pence
  across all items, never by re-reading formatted cells.

ROW SHAPES:
  Parcel item:          description | code | "£r per ha" | first | subsequent | annual
  Agreement-level item: description | code | "£a per agreement" | first | subsequent | annual

  Parcel units singularize by stripping a trailing "s" ("metres" ->
  "metre"). Agreement-level items are flat annual charges, so their
  rate column shows the annual amount per agreement instead of a
  per-unit rate.

SEE ALSO:
  - allocate.go: First/subsequent lookups and pence totals
  - currency.go: Cell formatting
*/
package render

import (
	"sort"
	"strings"

	"github.com/warp/agreement-engine/agreement"
)

type paymentRow struct {
	code  string
	cells []Cell
}

// PaymentsSummaryTable builds the summary of payments, including the
// bold totals row.
func PaymentsSummaryTable(a *agreement.Agreement) Table {
	plan := a.Payment.Normalized()
	firstPayment := plan.FirstPayment()
	subsequentPayment := plan.SubsequentPayment()

	var rows []paymentRow
	var items []ItemPayments

	for _, entry := range plan.ParcelItemEntries() {
		item := entry.Item
		payments := parcelItemPayments(entry, firstPayment, subsequentPayment)
		items = append(items, payments)
		rows = append(rows, paymentRow{
			code: item.Code,
			cells: []Cell{
				textCell(item.Description),
				textCell(item.Code),
				textCell(FormatPence(item.RateInPence) + " per " + singularize(item.Unit)),
				textCell(FormatPenceAmount(payments.FirstPaymentPence)),
				textCell(FormatPenceAmount(payments.SubsequentPaymentPence)),
				textCell(FormatPence(item.AnnualPaymentPence)),
			},
		})
	}

	for _, entry := range plan.AgreementLevelItemEntries() {
		item := entry.Item
		payments := agreementLevelItemPayments(entry, firstPayment, subsequentPayment)
		items = append(items, payments)
		rows = append(rows, paymentRow{
			code: item.Code,
			cells: []Cell{
				textCell(StripCodePrefix(item.Code, item.Description)),
				textCell(item.Code),
				textCell(FormatPence(item.AnnualPaymentPence) + " per agreement"),
				textCell(FormatPenceAmount(payments.FirstPaymentPence)),
				textCell(FormatPenceAmount(payments.SubsequentPaymentPence)),
				textCell(FormatPence(item.AnnualPaymentPence)),
			},
		})
	}

	// Stable sort keeps parcel rows ahead of agreement-level rows when
	// codes collide.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].code < rows[j].code })

	data := make([][]Cell, 0, len(rows)+1)
	for _, row := range rows {
		data = append(data, row.cells)
	}
	data = append(data, totalsRow(items))

	return Table{
		Headings: headings(
			"Action", "Code", "Annual payment rate",
			"First payment", "Subsequent payments", "Annual payment value",
		),
		Data: data,
	}
}

func parcelItemPayments(entry agreement.ParcelItemEntry, first, subsequent *agreement.PaymentEvent) ItemPayments {
	payments := ItemPayments{AnnualPaymentPence: entry.Item.AnnualPaymentPence.Pence()}
	if entry.HasID {
		payments.FirstPaymentPence = PaymentForParcelItem(first, entry.ID)
		payments.SubsequentPaymentPence = PaymentForParcelItem(subsequent, entry.ID)
	}
	return payments
}

func agreementLevelItemPayments(entry agreement.AgreementLevelItemEntry, first, subsequent *agreement.PaymentEvent) ItemPayments {
	payments := ItemPayments{AnnualPaymentPence: entry.Item.AnnualPaymentPence.Pence()}
	if entry.HasID {
		payments.FirstPaymentPence = PaymentForAgreementLevelItem(first, entry.ID)
		payments.SubsequentPaymentPence = PaymentForAgreementLevelItem(subsequent, entry.ID)
	}
	return payments
}

// totalsRow renders three leading blanks then the bold pence sums.
func totalsRow(items []ItemPayments) []Cell {
	return []Cell{
		textCell(""),
		textCell(""),
		textCell(""),
		boldCell(FormatPenceAmount(TotalFirstPayment(items))),
		boldCell(FormatPenceAmount(TotalSubsequentPayment(items))),
		boldCell(FormatPenceAmount(TotalAnnualPayment(items))),
	}
}

// singularize strips a trailing "s" from a unit name.
func singularize(unit string) string {
	return strings.TrimSuffix(unit, "s")
}
