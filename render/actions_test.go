package render_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/render"
)

func reviewAgreement() *agreement.Agreement {
	return &agreement.Agreement{
		Status: agreement.StatusOffered,
		Application: agreement.Application{
			Parcels: []agreement.Parcel{
				{
					SheetID:  "SD6743",
					ParcelID: "8083",
					Actions: []agreement.Action{
						{
							Code:          "CMOR1",
							DurationYears: agreement.YearsOf(1),
							AppliedFor:    agreement.AppliedFor{Unit: "ha", Quantity: 4.53411078},
						},
						{
							Code:          "UPL1",
							DurationYears: agreement.YearsOf(2),
							AppliedFor:    agreement.AppliedFor{Unit: "ha", Quantity: 4.53411078},
						},
					},
				},
				{
					SheetID:  "SD6744",
					ParcelID: "0001",
					Actions: []agreement.Action{
						{
							Code:       "UPL1",
							AppliedFor: agreement.AppliedFor{Unit: "ha", Quantity: 2},
						},
					},
				},
			},
		},
		Payment: agreement.PaymentPlan{
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {Code: "CMOR1", Description: "CMOR1: Assess moorland"},
				"2": {Code: "UPL1", Description: "UPL1: Moderate grazing"},
			},
		},
	}
}

func TestReviewActionsTable_Headings(t *testing.T) {
	table := render.ReviewActionsTable(reviewAgreement())

	titles := make([]any, len(table.Headings))
	for i, h := range table.Headings {
		titles[i] = h.Text
	}
	assert.Equal(t, []any{"Action", "Code", "Land parcel", "Quantity (ha)", "Duration"}, titles)
}

func TestReviewActionsTable_FlattensParcels(t *testing.T) {
	table := render.ReviewActionsTable(reviewAgreement())

	require.Len(t, table.Data, 3)

	first := table.Data[0]
	assert.Equal(t, "Assess moorland", first[0].Text)
	assert.Equal(t, "CMOR1", first[1].Text)
	assert.Equal(t, "SD6743 8083", first[2].Text)
	assert.Equal(t, 4.5341, first[3].Text, "quantity rounds to 4 decimal places")
	assert.Equal(t, "1 year", first[4].Text)

	assert.Equal(t, "SD6744 0001", table.Data[2][2].Text)
}

func TestReviewActionsTable_DurationLabels(t *testing.T) {
	// GIVEN: A wire payload with durations 1, "2" (numeric string), and
	// absent
	payload := []byte(`{
		"application": {"parcel": [
			{"sheetId": "SD6743", "parcelId": "8083", "actions": [
				{"code": "CMOR1", "durationYears": 1, "appliedFor": {"unit": "ha", "quantity": 1}},
				{"code": "UPL1", "durationYears": "2", "appliedFor": {"unit": "ha", "quantity": 1}},
				{"code": "UPL2", "appliedFor": {"unit": "ha", "quantity": 1}}
			]}
		]}
	}`)
	var a agreement.Agreement
	require.NoError(t, json.Unmarshal(payload, &a))

	// WHEN: The review actions table is built
	table := render.ReviewActionsTable(&a)

	// THEN: Labels are "1 year", "2 years", "0 years"
	require.Len(t, table.Data, 3)
	assert.Equal(t, "1 year", table.Data[0][4].Text)
	assert.Equal(t, "2 years", table.Data[1][4].Text)
	assert.Equal(t, "0 years", table.Data[2][4].Text)
}

func TestReviewActionsTable_MissingParcels(t *testing.T) {
	table := render.ReviewActionsTable(&agreement.Agreement{})

	assert.Len(t, table.Headings, 5, "headings unchanged")
	assert.Empty(t, table.Data)
}

func TestViewActionsTable_DatesShownWhenAccepted(t *testing.T) {
	a := &agreement.Agreement{
		Status: agreement.StatusAccepted,
		Payment: agreement.PaymentPlan{
			AgreementStartDate: "2024-01-01",
			AgreementEndDate:   "2024-12-31",
			ParcelItems: map[string]agreement.ParcelItem{
				"1": {
					SheetID:     "SX635990",
					ParcelID:    "ABC123",
					Code:        "ACT1",
					Description: "ACT1: Action One",
					Quantity:    2.5,
				},
			},
		},
	}

	table := render.ViewActionsTable(a)
	require.Len(t, table.Data, 1)

	row := table.Data[0]
	assert.Equal(t, "SX635990 ABC123", row[0].Text)
	require.NotNil(t, row[0].Attributes)
	assert.Equal(t, render.NoWrapStyle, row[0].Attributes.Style)
	assert.Equal(t, "ACT1", row[1].Text)
	assert.Equal(t, "Action One", row[2].Text)
	assert.Equal(t, 2.5, row[3].Text)
	assert.Equal(t, "01/01/2024", row[4].Text)
	assert.Equal(t, "31/12/2024", row[5].Text)
}

func TestViewActionsTable_DatesMaskedUntilBinding(t *testing.T) {
	for _, status := range []agreement.Status{agreement.StatusOffered, agreement.StatusWithdrawn} {
		a := &agreement.Agreement{
			Status: status,
			Payment: agreement.PaymentPlan{
				AgreementStartDate: "2024-01-01",
				AgreementEndDate:   "2024-12-31",
				ParcelItems: map[string]agreement.ParcelItem{
					"1": {SheetID: "SX635990", ParcelID: "ABC123", Code: "ACT1"},
				},
			},
		}

		table := render.ViewActionsTable(a)
		require.Len(t, table.Data, 1)
		assert.Equal(t, render.Redacted, table.Data[0][4].Text, "status %s", status)
		assert.Equal(t, render.Redacted, table.Data[0][5].Text, "status %s", status)
	}
}
