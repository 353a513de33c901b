package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/render"
)

func scheduleAgreement() *agreement.Agreement {
	return &agreement.Agreement{
		Status: agreement.StatusOffered,
		Payment: agreement.PaymentPlan{
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {Code: "A2", Description: "A2: Parcel action"},
			},
			AgreementLevelItems: map[string]agreement.AgreementLevelItem{
				"1": {Code: "A10", Description: "A10: Agreement-level item"},
			},
			Payments: []agreement.PaymentEvent{
				{
					PaymentDate: "2023-06-01",
					LineItems:   []agreement.LineItem{{ParcelItemID: agreement.ID(1), PaymentPence: 1000}},
				},
				{
					PaymentDate: "2024-06-01",
					LineItems:   []agreement.LineItem{{AgreementLevelItemID: agreement.ID(1), PaymentPence: 2000}},
				},
			},
		},
	}
}

func TestAnnualScheduleTable_HeadingsAreYears(t *testing.T) {
	table := render.AnnualScheduleTable(scheduleAgreement())

	titles := make([]any, len(table.Headings))
	for i, h := range table.Headings {
		titles[i] = h.Text
	}
	// Year headings are numbers, not strings.
	assert.Equal(t, []any{"Code", 2023, 2024, "Total payment"}, titles)
}

func TestAnnualScheduleTable_NaturalCodeOrder(t *testing.T) {
	// GIVEN: Codes A2 and A10 across two payment years
	// THEN: A2 sorts before A10 (numeric-aware), then the Total row

	table := render.AnnualScheduleTable(scheduleAgreement())

	rows := table.Data
	require.Len(t, rows, 3)
	assert.Equal(t, "A2", rows[0][0].Text)
	assert.Equal(t, "A10", rows[1][0].Text)
	assert.Equal(t, "Total", rows[2][0].Text)
}

func TestAnnualScheduleTable_Cells(t *testing.T) {
	table := render.AnnualScheduleTable(scheduleAgreement())
	rows := table.Data
	require.Len(t, rows, 3)

	// A2 paid in 2023 only
	assert.Equal(t, "£10", rows[0][1].Text)
	assert.Equal(t, "£0", rows[0][2].Text)
	assert.Equal(t, "£10", rows[0][3].Text)

	// A10 paid in 2024 only
	assert.Equal(t, "£0", rows[1][1].Text)
	assert.Equal(t, "£20", rows[1][2].Text)
	assert.Equal(t, "£20", rows[1][3].Text)

	// Totals row
	assert.Equal(t, "£10", rows[2][1].Text)
	assert.Equal(t, "£20", rows[2][2].Text)
	assert.Equal(t, "£30", rows[2][3].Text)
}

func TestAnnualScheduleTable_AccumulatesSameCodeAcrossEvents(t *testing.T) {
	a := &agreement.Agreement{
		Payment: agreement.PaymentPlan{
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {Code: "CMOR1"},
			},
			AgreementLevelItems: map[string]agreement.AgreementLevelItem{
				"1": {Code: "CMOR1"},
			},
			Payments: []agreement.PaymentEvent{
				{
					PaymentDate: "2025-12-05",
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 1204},
						{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6803},
					},
				},
				{
					PaymentDate: "2026-03-05",
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 1201},
						{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6800},
					},
				},
			},
		},
	}

	table := render.AnnualScheduleTable(a)

	// Both item kinds share CMOR1, so one row plus Total.
	require.Len(t, table.Data, 2)
	row := table.Data[0]
	assert.Equal(t, "CMOR1", row[0].Text)
	assert.Equal(t, "£80.07", row[1].Text)
	assert.Equal(t, "£80.01", row[2].Text)
	assert.Equal(t, "£160.08", row[3].Text)
}

func TestAnnualScheduleTable_UnresolvableLineItemsSkipped(t *testing.T) {
	// Pivot completeness: every resolvable line item contributes exactly
	// once; dangling references contribute nowhere.

	a := &agreement.Agreement{
		Payment: agreement.PaymentPlan{
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {Code: "ACT1"},
			},
			Payments: []agreement.PaymentEvent{
				{
					PaymentDate: "2024-01-01",
					LineItems: []agreement.LineItem{
						{ParcelItemID: agreement.ID(1), PaymentPence: 500},
						{ParcelItemID: agreement.ID(99), PaymentPence: 9999}, // dangling
					},
				},
			},
		},
	}

	table := render.AnnualScheduleTable(a)
	require.Len(t, table.Data, 2)

	assert.Equal(t, "ACT1", table.Data[0][0].Text)
	assert.Equal(t, "£5", table.Data[0][2].Text)
	assert.Equal(t, "£5", table.Data[1][2].Text, "grand total excludes the dangling line item")
}

func TestAnnualScheduleTable_EmptyPayments(t *testing.T) {
	table := render.AnnualScheduleTable(&agreement.Agreement{})

	titles := make([]any, len(table.Headings))
	for i, h := range table.Headings {
		titles[i] = h.Text
	}
	assert.Equal(t, []any{"Code", "Total payment"}, titles)

	require.Len(t, table.Data, 1)
	assert.Equal(t, "Total", table.Data[0][0].Text)
	assert.Equal(t, "£0", table.Data[0][1].Text)
}
