/*
Package agreement defines the domain model for farming-grant agreements.

PURPOSE:
  This package contains the types that mirror the agreement record served
  by the grants backend: the applicant, the land parcels the application
  covers, and the payment plan (per-parcel items, agreement-level items,
  and the scheduled payment events that pay them out).

KEY CONCEPTS IN THIS FILE (types.go):
  - Agreement: Root record fetched once per request, immutable input
  - Parcel/Action: What the applicant is doing on which land parcel
  - PaymentPlan: Items plus the chronological payment events
  - LineItem: A single payout within a payment event, referencing
    exactly one parcel item or one agreement-level item

DESIGN PRINCIPLES:
  1. Tolerance: Records arrive partially populated; every consumer must
     survive missing maps, arrays, and fields (see normalize.go)
  2. Minor units: All money is integer pence; formatting happens at the
     presentation layer, never here
  3. No mutation: The engine derives view models from an Agreement, it
     never writes back to one (status transitions happen upstream)

USAGE:
  var a agreement.Agreement
  if err := json.Unmarshal(payload, &a); err != nil { ... }
  plan := a.Payment.Normalized()
  for _, entry := range plan.ParcelItemEntries() { ... }

SEE ALSO:
  - pence.go: PenceValue, tolerant decoding of monetary fields
  - status.go: The offered/accepted/withdrawn state machine
  - normalize.go: Defaulting and ordered item access
*/
package agreement

// =============================================================================
// AGREEMENT - Root record
// =============================================================================

// Agreement is the raw record fetched from the grants backend. It is
// immutable input to the presentation engine.
type Agreement struct {
	Status      Status      `json:"status"`
	Applicant   Applicant   `json:"applicant"`
	Application Application `json:"application"`
	Payment     PaymentPlan `json:"payment"`
}

// Applicant identifies who the agreement is offered to.
type Applicant struct {
	Business Business `json:"business"`
	Customer Customer `json:"customer"`
}

type Business struct {
	Name string `json:"name"`
}

type Customer struct {
	Name *CustomerName `json:"name"`
}

// CustomerName holds the parts of an applicant's name. Any part may be
// empty; display joins the non-empty parts.
type CustomerName struct {
	Title  string `json:"title"`
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

// =============================================================================
// APPLICATION - Land parcels and actions applied for
// =============================================================================

type Application struct {
	Parcels []Parcel `json:"parcel"`
}

// Parcel is a single land parcel with the actions applied for on it.
type Parcel struct {
	SheetID  string   `json:"sheetId"`
	ParcelID string   `json:"parcelId"`
	Actions  []Action `json:"actions"`
}

// Action is one funded activity on a parcel.
type Action struct {
	Code          string     `json:"code"`
	DurationYears Years      `json:"durationYears"`
	AppliedFor    AppliedFor `json:"appliedFor"`
}

type AppliedFor struct {
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

// =============================================================================
// PAYMENT PLAN - Items and scheduled payment events
// =============================================================================

// PaymentPlan carries everything payable under the agreement.
//
// ParcelItems and AgreementLevelItems are keyed by the item ids that
// payment-event line items reference. Keys are decimal strings on the
// wire; ordered access goes through the entry helpers in normalize.go.
type PaymentPlan struct {
	AgreementStartDate  string                        `json:"agreementStartDate"`
	AgreementEndDate    string                        `json:"agreementEndDate"`
	Frequency           string                        `json:"frequency"`
	AgreementTotalPence PenceValue                    `json:"agreementTotalPence"`
	AnnualTotalPence    PenceValue                    `json:"annualTotalPence"`
	ParcelItems         map[string]ParcelItem         `json:"parcelItems"`
	AgreementLevelItems map[string]AgreementLevelItem `json:"agreementLevelItems"`
	Payments            []PaymentEvent                `json:"payments"`
}

// ParcelItem is a recurring per-parcel payment line (area x rate).
type ParcelItem struct {
	Code               string     `json:"code"`
	Description        string     `json:"description"`
	Unit               string     `json:"unit"`
	Quantity           float64    `json:"quantity"`
	RateInPence        PenceValue `json:"rateInPence"`
	AnnualPaymentPence PenceValue `json:"annualPaymentPence"`
	SheetID            string     `json:"sheetId"`
	ParcelID           string     `json:"parcelId"`
}

// AgreementLevelItem is a flat annual payment not tied to any parcel.
// It is charged once per agreement per year, so it carries no per-unit
// rate.
type AgreementLevelItem struct {
	Code               string     `json:"code"`
	Description        string     `json:"description"`
	AnnualPaymentPence PenceValue `json:"annualPaymentPence"`
}

// PaymentEvent is one scheduled payout. Payments[0] is the first
// (possibly prorated) payment, Payments[1] is representative of all
// subsequent payments, and the last element is this quarter's payment.
type PaymentEvent struct {
	PaymentDate       string     `json:"paymentDate"`
	TotalPaymentPence PenceValue `json:"totalPaymentPence"`
	LineItems         []LineItem `json:"lineItems"`
}

// LineItem pays out part of a payment event against exactly one item.
// Exactly one of ParcelItemID / AgreementLevelItemID is set.
type LineItem struct {
	ParcelItemID         ItemID `json:"parcelItemId"`
	AgreementLevelItemID ItemID `json:"agreementLevelItemId"`
	PaymentPence         int64  `json:"paymentPence"`
}
