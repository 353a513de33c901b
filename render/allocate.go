/*
allocate.go - Line-item lookups within payment events

PURPOSE:
  A payment event pays out a list of line items, each referencing one
  parcel item or one agreement-level item by numeric id. These helpers
  answer "how much does event X pay item Y", defaulting to zero when
  the event is absent or pays nothing for that item. The first payment
  is possibly prorated, so the amounts here cannot be derived from the
  items' annual values.

SEE ALSO:
  - payments.go: Uses these against payments[0] and payments[1]
  - schedule.go: Walks line items directly for the year pivot
*/
package render

import (
	"github.com/warp/agreement-engine/agreement"
)

// PaymentForParcelItem returns the pence the event pays the parcel item
// with the given id, or 0 when the event is nil or pays it nothing.
func PaymentForParcelItem(event *agreement.PaymentEvent, id int64) int64 {
	if event == nil {
		return 0
	}
	for _, li := range event.LineItems {
		if li.ParcelItemID.Matches(id) {
			return li.PaymentPence
		}
	}
	return 0
}

// PaymentForAgreementLevelItem returns the pence the event pays the
// agreement-level item with the given id, or 0.
func PaymentForAgreementLevelItem(event *agreement.PaymentEvent, id int64) int64 {
	if event == nil {
		return 0
	}
	for _, li := range event.LineItems {
		if li.AgreementLevelItemID.Matches(id) {
			return li.PaymentPence
		}
	}
	return 0
}

// ItemPayments carries the per-item amounts derived for the payments
// summary. Totals are summed from these, independently of the rendered
// rows, so formatting can never introduce drift.
type ItemPayments struct {
	FirstPaymentPence      int64
	SubsequentPaymentPence int64
	AnnualPaymentPence     int64
}

// TotalFirstPayment sums the first-payment amounts across items.
func TotalFirstPayment(items []ItemPayments) int64 {
	var total int64
	for _, it := range items {
		total += it.FirstPaymentPence
	}
	return total
}

// TotalSubsequentPayment sums the subsequent-payment amounts across items.
func TotalSubsequentPayment(items []ItemPayments) int64 {
	var total int64
	for _, it := range items {
		total += it.SubsequentPaymentPence
	}
	return total
}

// TotalAnnualPayment sums the annual entitlement across items.
func TotalAnnualPayment(items []ItemPayments) int64 {
	var total int64
	for _, it := range items {
		total += it.AnnualPaymentPence
	}
	return total
}
