/*
model.go - View-model assembly and status redaction

PURPOSE:
  Orchestrates the table builders into the two page models:

  Review offer (status: offered): applied-for actions, payments
  summary, annual schedule, one-off annual payments, first payment
  date.

  View agreement (status: accepted/withdrawn): applicant identity,
  agreement dates, land table, parcel-item actions, payments summary,
  annual schedule.

REDACTION:
  Until the agreement is binding (accepted), business name and
  applicant name are masked; while the agreement is offered or
  withdrawn the display dates are masked too. The same rule reaches the
  per-row date cells in ViewActionsTable. Masking uses a fixed
  placeholder, not omission, so the page layout never shifts.

SEE ALSO:
  - agreement/status.go: The state machine driving redaction
  - actions.go, payments.go, schedule.go, annual.go, land.go: Builders
*/
package render

import (
	"strings"

	"github.com/warp/agreement-engine/agreement"
)

// Redacted is the placeholder shown in place of sensitive values
// before an agreement is binding.
const Redacted = "XXXXX"

// =============================================================================
// VIEW MODELS
// =============================================================================

// ReviewOfferModel is the flat object the review-offer page renders.
type ReviewOfferModel struct {
	PageTitle             string          `json:"pageTitle"`
	SummaryOfActions      Table           `json:"summaryOfActions"`
	SummaryOfPayments     Table           `json:"summaryOfPayments"`
	AnnualPaymentSchedule Table           `json:"annualPaymentSchedule"`
	AnnualPayments        []AnnualPayment `json:"annualPayments"`
	FirstPaymentDate      string          `json:"firstPaymentDate"`
}

// ViewAgreementModel is the flat object the view-agreement page renders.
type ViewAgreementModel struct {
	PageTitle             string `json:"pageTitle"`
	AgreementName         string `json:"agreementName"`
	AgreementStartDate    string `json:"agreementStartDate"`
	AgreementEndDate      string `json:"agreementEndDate"`
	IsDraftAgreement      bool   `json:"isDraftAgreement"`
	IsAgreementAccepted   bool   `json:"isAgreementAccepted"`
	IsWithdrawnAgreement  bool   `json:"isWithdrawnAgreement"`
	BusinessName          string `json:"businessName"`
	ApplicantName         string `json:"applicantName"`
	AgreementLand         Table  `json:"agreementLand"`
	SummaryOfActions      Table  `json:"summaryOfActions"`
	SummaryOfPayments     Table  `json:"summaryOfPayments"`
	AnnualPaymentSchedule Table  `json:"annualPaymentSchedule"`
}

// =============================================================================
// ASSEMBLERS
// =============================================================================

// BuildReviewOfferModel assembles the review-offer page model.
func BuildReviewOfferModel(a *agreement.Agreement) ReviewOfferModel {
	return ReviewOfferModel{
		PageTitle:             "Review your agreement offer",
		SummaryOfActions:      ReviewActionsTable(a),
		SummaryOfPayments:     PaymentsSummaryTable(a),
		AnnualPaymentSchedule: AnnualScheduleTable(a),
		AnnualPayments:        AdditionalAnnualPayments(a),
		FirstPaymentDate:      FirstPaymentDate(a.Payment.AgreementStartDate),
	}
}

// BuildViewAgreementModel assembles the view-agreement page model,
// applying the status redaction rules.
func BuildViewAgreementModel(a *agreement.Agreement) ViewAgreementModel {
	businessName := a.Applicant.Business.Name
	applicantName := FormatApplicantName(a.Applicant.Customer)
	agreementName := businessName + " FPTT"
	startDate := FormatAgreementDate(a.Payment.AgreementStartDate, LongDateFormat)
	endDate := FormatAgreementDate(a.Payment.AgreementEndDate, LongDateFormat)

	if !a.Status.Binding() {
		businessName = Redacted
		applicantName = Redacted
		startDate = Redacted
		endDate = Redacted
	}

	return ViewAgreementModel{
		PageTitle:             agreementName,
		AgreementName:         agreementName,
		AgreementStartDate:    startDate,
		AgreementEndDate:      endDate,
		IsDraftAgreement:      a.Status == agreement.StatusOffered,
		IsAgreementAccepted:   a.Status == agreement.StatusAccepted,
		IsWithdrawnAgreement:  a.Status == agreement.StatusWithdrawn,
		BusinessName:          businessName,
		ApplicantName:         applicantName,
		AgreementLand:         AgreementLandTable(a),
		SummaryOfActions:      ViewActionsTable(a),
		SummaryOfPayments:     PaymentsSummaryTable(a),
		AnnualPaymentSchedule: AnnualScheduleTable(a),
	}
}

// FormatApplicantName joins the non-empty trimmed parts of the
// customer's name. A missing name object yields "".
func FormatApplicantName(c agreement.Customer) string {
	if c.Name == nil {
		return ""
	}
	parts := []string{c.Name.Title, c.Name.First, c.Name.Middle, c.Name.Last}
	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			joined = append(joined, strings.TrimSpace(part))
		}
	}
	return strings.Join(joined, " ")
}
