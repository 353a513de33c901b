/*
annual.go - One-off annual payment listing

PURPOSE:
  Agreement-level items are charged once per agreement per year. The
  review-offer page lists them separately from the payments table:
  code, clean description, and "£x per agreement", sorted by code.

SEE ALSO:
  - payments.go: The same items inside the payments summary
*/
package render

import (
	"sort"

	"github.com/warp/agreement-engine/agreement"
)

// AnnualPayment is one agreement-level item as listed on the
// review-offer page.
type AnnualPayment struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Payment     string `json:"payment"`
}

// AdditionalAnnualPayments lists the agreement-level items sorted
// ascending by code. Missing items yield an empty slice.
func AdditionalAnnualPayments(a *agreement.Agreement) []AnnualPayment {
	plan := a.Payment.Normalized()

	payments := []AnnualPayment{}
	for _, entry := range plan.AgreementLevelItemEntries() {
		item := entry.Item
		payments = append(payments, AnnualPayment{
			Code:        item.Code,
			Description: StripCodePrefix(item.Code, item.Description),
			Payment:     FormatPence(item.AnnualPaymentPence) + " per agreement",
		})
	}

	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Code < payments[j].Code })
	return payments
}
