/*
actions.go - Action summary tables

PURPOSE:
  Two flavours of action summary are shown:

  Review offer: one row per applied-for action, flattened across all
  land parcels, with the action's duration. Descriptions come from the
  payment items via BuildCodeDescriptions, keyed by code.

  View agreement: one row per parcel payment item, with the agreement's
  start and end dates on every row. Dates are masked until the
  agreement is binding.

SEE ALSO:
  - descriptions.go: Code-to-description lookup
  - model.go: Redaction rules and assembly
*/
package render

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/warp/agreement-engine/agreement"
)

// =============================================================================
// REVIEW OFFER - Applied-for actions with duration
// =============================================================================

// ReviewActionsTable flattens the application's parcel actions into
// display rows. A missing application yields the headings with no rows.
func ReviewActionsTable(a *agreement.Agreement) Table {
	plan := a.Payment.Normalized()
	codeDescriptions := BuildCodeDescriptions(plan)

	data := [][]Cell{}
	for _, parcel := range a.Application.ParcelsOrEmpty() {
		for _, action := range parcel.Actions {
			data = append(data, []Cell{
				textCell(codeDescriptions[action.Code]),
				textCell(action.Code),
				textCell(parcel.SheetID + " " + parcel.ParcelID),
				numCell(roundQuantity(action.AppliedFor.Quantity)),
				textCell(durationLabel(action.DurationYears)),
			})
		}
	}

	return Table{
		Headings: headings("Action", "Code", "Land parcel", "Quantity (ha)", "Duration"),
		Data:     data,
	}
}

// durationLabel renders "1 year" / "N years", with missing or invalid
// durations counting as zero.
func durationLabel(y agreement.Years) string {
	years := y.Value()
	label := " years"
	if years == 1 {
		label = " year"
	}
	return formatNumber(years) + label
}

// =============================================================================
// VIEW AGREEMENT - Parcel items with agreement dates
// =============================================================================

// ViewActionsTable lists the parcel payment items with per-row start
// and end dates, masked unless the agreement is binding.
func ViewActionsTable(a *agreement.Agreement) Table {
	plan := a.Payment.Normalized()

	startDate := FormatAgreementDate(plan.AgreementStartDate, ShortDateFormat)
	endDate := FormatAgreementDate(plan.AgreementEndDate, ShortDateFormat)
	if !a.Status.Binding() {
		startDate = Redacted
		endDate = Redacted
	}

	data := [][]Cell{}
	for _, entry := range plan.ParcelItemEntries() {
		item := entry.Item
		data = append(data, []Cell{
			noWrapCell(item.SheetID + " " + item.ParcelID),
			textCell(item.Code),
			textCell(StripCodePrefix(item.Code, item.Description)),
			numCell(item.Quantity),
			textCell(startDate),
			textCell(endDate),
		})
	}

	return Table{
		Headings: headings("Parcel", "Code", "Action", "Total parcel area (ha)", "Start date", "End date"),
		Data:     data,
	}
}

// =============================================================================
// NUMBER HELPERS
// =============================================================================

// roundQuantity rounds an area to 4 decimal places for display.
func roundQuantity(q float64) float64 {
	return decimal.NewFromFloat(q).Round(4).InexactFloat64()
}

// formatNumber prints whole numbers without a decimal part.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
