/*
land.go - Agreement land table

PURPOSE:
  Aggregates parcel-item areas per land parcel for the view-agreement
  page. Multiple items on the same parcel (different actions) sum into
  one row. Rows keep first-seen parcel order from the item entries.

SEE ALSO:
  - actions.go: roundQuantity, the shared 4 dp rounding rule
*/
package render

import (
	"github.com/warp/agreement-engine/agreement"
)

// AgreementLandTable sums parcel-item quantities per "<sheetId>
// <parcelId>" reference.
func AgreementLandTable(a *agreement.Agreement) Table {
	plan := a.Payment.Normalized()

	order := []string{}
	areas := map[string]float64{}
	for _, entry := range plan.ParcelItemEntries() {
		ref := entry.Item.SheetID + " " + entry.Item.ParcelID
		if _, seen := areas[ref]; !seen {
			order = append(order, ref)
		}
		areas[ref] += entry.Item.Quantity
	}

	data := make([][]Cell, 0, len(order))
	for _, ref := range order {
		data = append(data, []Cell{
			textCell(ref),
			numCell(roundQuantity(areas[ref])),
		})
	}

	return Table{
		Headings: []Cell{
			noWrapCell("Parcel"),
			textCell("Total parcel area (ha)"),
		},
		Data: data,
	}
}
