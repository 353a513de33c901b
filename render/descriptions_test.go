package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/render"
)

func TestStripCodePrefix(t *testing.T) {
	assert.Equal(t, "Assess moorland and produce a written record",
		render.StripCodePrefix("CMOR1", "CMOR1: Assess moorland and produce a written record"))

	assert.Equal(t, "No prefix here", render.StripCodePrefix("CMOR1", "No prefix here"))
	assert.Equal(t, "", render.StripCodePrefix("CMOR1", ""))
	assert.Equal(t, "whatever", render.StripCodePrefix("", "whatever"))
}

func TestBuildCodeDescriptions_StripsPrefixes(t *testing.T) {
	plan := agreement.PaymentPlan{
		ParcelItems: map[string]agreement.ParcelItem{
			"1": {Code: "CMOR1", Description: "CMOR1: Assess moorland"},
			"2": {Code: "UPL1", Description: "Moderate grazing"},
		},
	}

	descriptions := render.BuildCodeDescriptions(plan)

	assert.Equal(t, "Assess moorland", descriptions["CMOR1"])
	assert.Equal(t, "Moderate grazing", descriptions["UPL1"])
}

func TestBuildCodeDescriptions_AgreementLevelWins(t *testing.T) {
	// GIVEN: A parcel item and an agreement-level item sharing a code
	// WHEN: Descriptions are resolved
	// THEN: The agreement-level description wins the collision

	plan := agreement.PaymentPlan{
		ParcelItems: map[string]agreement.ParcelItem{
			"1": {Code: "CMOR1", Description: "CMOR1: Parcel description"},
		},
		AgreementLevelItems: map[string]agreement.AgreementLevelItem{
			"1": {Code: "CMOR1", Description: "CMOR1: Agreement-level description"},
		},
	}

	descriptions := render.BuildCodeDescriptions(plan)

	assert.Equal(t, "Agreement-level description", descriptions["CMOR1"])
}

func TestBuildCodeDescriptions_EmptyDescriptionStillRegisters(t *testing.T) {
	plan := agreement.PaymentPlan{
		ParcelItems: map[string]agreement.ParcelItem{
			"1": {Code: "CMOR1"},
		},
	}

	descriptions := render.BuildCodeDescriptions(plan)

	value, ok := descriptions["CMOR1"]
	assert.True(t, ok, "code registers even without a description")
	assert.Equal(t, "", value)
}

func TestBuildCodeDescriptions_ItemsWithoutCodeSkipped(t *testing.T) {
	plan := agreement.PaymentPlan{
		ParcelItems: map[string]agreement.ParcelItem{
			"1": {Description: "orphan description"},
		},
	}

	assert.Empty(t, render.BuildCodeDescriptions(plan))
}
