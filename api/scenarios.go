/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built agreements that populate the cache with realistic
	data for demos and for running the service without a grants backend.
	The fixtures are modelled on real SFI offers: moorland assessment
	parcel items, an agreement-level management payment, and a quarterly
	payment schedule whose first payment is prorated.

AVAILABLE SCENARIOS:

	offered-moorland:     Single-parcel offer awaiting a decision
	accepted-multi-year:  Accepted agreement spanning three payment years
	withdrawn-offer:      Offer withdrawn before acceptance

HOW SCENARIOS WORK:
 1. Reset the cache
 2. Marshal the fixture agreements
 3. Save them as cached documents keyed by agreement id

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "offered-moorland"}

NOTE:

	Scenarios reset the cache. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: LoadScenario, ListScenarios handlers
  - store/sqlite: The cache being populated
*/
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/store/sqlite"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "offered-moorland",
		Name:        "Offered Moorland Agreement",
		Description: "Single-parcel CMOR1 offer with a prorated first quarterly payment",
	},
	{
		ID:          "accepted-multi-year",
		Name:        "Accepted Multi-Year Agreement",
		Description: "Accepted agreement with payments across three calendar years",
	},
	{
		ID:          "withdrawn-offer",
		Name:        "Withdrawn Offer",
		Description: "Offer withdrawn before acceptance; identity stays masked",
	},
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the cache and loads the requested scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.loadScenario(r.Context(), req.ScenarioID); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to load scenario", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"loaded": req.ScenarioID})
}

// ResetStore clears the agreement cache.
func (h *Handler) ResetStore(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset store", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reset": true})
}

func (h *Handler) loadScenario(ctx context.Context, scenarioID string) error {
	var fixtures map[string]*agreement.Agreement
	switch scenarioID {
	case "offered-moorland":
		fixtures = map[string]*agreement.Agreement{
			"SFI123456789": SampleOfferedAgreement(),
		}
	case "accepted-multi-year":
		fixtures = map[string]*agreement.Agreement{
			"SFI987654321": SampleAcceptedAgreement(),
		}
	case "withdrawn-offer":
		withdrawn := SampleOfferedAgreement()
		withdrawn.Status = agreement.StatusWithdrawn
		fixtures = map[string]*agreement.Agreement{
			"SFI000000013": withdrawn,
		}
	default:
		return fmt.Errorf("unknown scenario: %s", scenarioID)
	}

	if err := h.Store.Reset(ctx); err != nil {
		return err
	}

	for id, a := range fixtures {
		payload, err := json.Marshal(a)
		if err != nil {
			return err
		}
		if err := h.Store.SaveAgreement(ctx, sqlite.Record{
			AgreementID: id,
			Status:      a.Status,
			Payload:     payload,
		}); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// SAMPLE AGREEMENTS
// =============================================================================

// SampleOfferedAgreement is a single-parcel CMOR1 offer: one parcel
// item, one agreement-level management payment, and a year of
// quarterly payments with a prorated first payment.
func SampleOfferedAgreement() *agreement.Agreement {
	return &agreement.Agreement{
		Status: agreement.StatusOffered,
		Applicant: agreement.Applicant{
			Business: agreement.Business{Name: "J&S Hartley"},
			Customer: agreement.Customer{Name: &agreement.CustomerName{
				Title: "Mr", First: "James", Last: "Hartley",
			}},
		},
		Application: agreement.Application{
			Parcels: []agreement.Parcel{
				{
					SheetID:  "SD6743",
					ParcelID: "8083",
					Actions: []agreement.Action{
						{
							Code:          "CMOR1",
							DurationYears: agreement.YearsOf(3),
							AppliedFor:    agreement.AppliedFor{Unit: "ha", Quantity: 4.53411078},
						},
					},
				},
			},
		},
		Payment: agreement.PaymentPlan{
			AgreementStartDate: "2025-09-01",
			AgreementEndDate:   "2028-09-01",
			Frequency:          "Quarterly",
			AnnualTotalPence:   agreement.Pence(32006),
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {
					Code:               "CMOR1",
					Description:        "CMOR1: Assess moorland and produce a written record",
					Unit:               "ha",
					Quantity:           4.53411078,
					RateInPence:        agreement.Pence(1060),
					AnnualPaymentPence: agreement.Pence(4806),
					SheetID:            "SD6743",
					ParcelID:           "8083",
				},
			},
			AgreementLevelItems: map[string]agreement.AgreementLevelItem{
				"1": {
					Code:               "CMOR1",
					Description:        "CMOR1: Assess moorland and produce a written record",
					AnnualPaymentPence: agreement.Pence(27200),
				},
			},
			Payments: []agreement.PaymentEvent{
				{
					PaymentDate:       "2025-12-05",
					TotalPaymentPence: agreement.Pence(8007),
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 1204},
						{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6803},
					},
				},
				{
					PaymentDate:       "2026-03-05",
					TotalPaymentPence: agreement.Pence(8001),
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 1201},
						{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6800},
					},
				},
				{
					PaymentDate:       "2026-06-05",
					TotalPaymentPence: agreement.Pence(8001),
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 1201},
						{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6800},
					},
				},
				{
					PaymentDate:       "2026-09-07",
					TotalPaymentPence: agreement.Pence(8001),
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 1201},
						{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6800},
					},
				},
			},
		},
	}
}

// SampleAcceptedAgreement is a binding agreement with two parcels,
// three actions, and quarterly payments across three calendar years.
func SampleAcceptedAgreement() *agreement.Agreement {
	return &agreement.Agreement{
		Status: agreement.StatusAccepted,
		Applicant: agreement.Applicant{
			Business: agreement.Business{Name: "Moorside Farming Ltd"},
			Customer: agreement.Customer{Name: &agreement.CustomerName{
				Title: "Mrs", First: "Anne", Middle: "C", Last: "Boothman",
			}},
		},
		Application: agreement.Application{
			Parcels: []agreement.Parcel{
				{
					SheetID:  "SX6359",
					ParcelID: "9901",
					Actions: []agreement.Action{
						{
							Code:          "CMOR1",
							DurationYears: agreement.YearsOf(3),
							AppliedFor:    agreement.AppliedFor{Unit: "ha", Quantity: 12.250143},
						},
						{
							Code:          "UPL1",
							DurationYears: agreement.YearsOf(3),
							AppliedFor:    agreement.AppliedFor{Unit: "ha", Quantity: 12.250143},
						},
					},
				},
				{
					SheetID:  "SX6360",
					ParcelID: "0221",
					Actions: []agreement.Action{
						{
							Code:          "UPL1",
							DurationYears: agreement.YearsOf(3),
							AppliedFor:    agreement.AppliedFor{Unit: "ha", Quantity: 3.8842},
						},
					},
				},
			},
		},
		Payment: agreement.PaymentPlan{
			AgreementStartDate: "2025-01-01",
			AgreementEndDate:   "2027-12-31",
			Frequency:          "Quarterly",
			AnnualTotalPence:   agreement.Pence(103868),
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {
					Code:               "CMOR1",
					Description:        "CMOR1: Assess moorland and produce a written record",
					Unit:               "ha",
					Quantity:           12.250143,
					RateInPence:        agreement.Pence(1060),
					AnnualPaymentPence: agreement.Pence(12985),
					SheetID:            "SX6359",
					ParcelID:           "9901",
				},
				"2": {
					Code:               "UPL1",
					Description:        "UPL1: Moderate livestock grazing on moorland",
					Unit:               "ha",
					Quantity:           12.250143,
					RateInPence:        agreement.Pence(2000),
					AnnualPaymentPence: agreement.Pence(24500),
					SheetID:            "SX6359",
					ParcelID:           "9901",
				},
				"3": {
					Code:               "UPL1",
					Description:        "UPL1: Moderate livestock grazing on moorland",
					Unit:               "ha",
					Quantity:           3.8842,
					RateInPence:        agreement.Pence(2000),
					AnnualPaymentPence: agreement.Pence(7768),
					SheetID:            "SX6360",
					ParcelID:           "0221",
				},
			},
			AgreementLevelItems: map[string]agreement.AgreementLevelItem{
				"1": {
					Code:               "MPAY1",
					Description:        "MPAY1: Management payment",
					AnnualPaymentPence: agreement.Pence(27200),
				},
			},
			Payments: quarterlyPayments(),
		},
	}
}

// quarterlyPayments builds three years of quarterly events for the
// accepted fixture, first payment prorated up.
func quarterlyPayments() []agreement.PaymentEvent {
	dates := []string{
		"2025-04-05", "2025-07-05", "2025-10-06",
		"2026-01-05", "2026-04-06", "2026-07-06", "2026-10-05",
		"2027-01-05", "2027-04-05", "2027-07-05", "2027-10-05", "2027-12-20",
	}
	events := make([]agreement.PaymentEvent, len(dates))
	for i, date := range dates {
		// Steady-state quarterly split of the annual totals.
		lineItems := []agreement.LineItem{
			{ParcelItemID: agreement.ID(1), PaymentPence: 3246},
			{ParcelItemID: agreement.ID(2), PaymentPence: 6125},
			{ParcelItemID: agreement.ID(3), PaymentPence: 1942},
			{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6800},
		}
		if i == 0 {
			// The first payment carries the proration remainder.
			lineItems = []agreement.LineItem{
				{ParcelItemID: agreement.ID(1), PaymentPence: 3247},
				{ParcelItemID: agreement.ID(2), PaymentPence: 6125},
				{ParcelItemID: agreement.ID(3), PaymentPence: 1942},
				{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6800},
			}
		}
		var total int64
		for _, li := range lineItems {
			total += li.PaymentPence
		}
		events[i] = agreement.PaymentEvent{
			PaymentDate:       date,
			TotalPaymentPence: agreement.Pence(total),
			LineItems:         lineItems,
		}
	}
	return events
}
