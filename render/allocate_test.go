package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/render"
)

func paymentEvent() *agreement.PaymentEvent {
	return &agreement.PaymentEvent{
		PaymentDate: "2025-12-05",
		LineItems: []agreement.LineItem{
			{ParcelItemID: agreement.ID(1), PaymentPence: 1204},
			{ParcelItemID: agreement.ID(2), PaymentPence: 3750},
			{AgreementLevelItemID: agreement.ID(1), PaymentPence: 6803},
		},
	}
}

func TestPaymentForParcelItem(t *testing.T) {
	event := paymentEvent()

	assert.Equal(t, int64(1204), render.PaymentForParcelItem(event, 1))
	assert.Equal(t, int64(3750), render.PaymentForParcelItem(event, 2))
	assert.Equal(t, int64(0), render.PaymentForParcelItem(event, 3), "unreferenced item pays nothing")
	assert.Equal(t, int64(0), render.PaymentForParcelItem(nil, 1), "absent event pays nothing")
}

func TestPaymentForParcelItem_IgnoresAgreementLevelLines(t *testing.T) {
	// Line items reference exactly one id kind; a parcel lookup must
	// not match an agreement-level line sharing the same numeric id.
	event := paymentEvent()

	assert.Equal(t, int64(1204), render.PaymentForParcelItem(event, 1))
	assert.Equal(t, int64(6803), render.PaymentForAgreementLevelItem(event, 1))
}

func TestPaymentForAgreementLevelItem(t *testing.T) {
	event := paymentEvent()

	assert.Equal(t, int64(6803), render.PaymentForAgreementLevelItem(event, 1))
	assert.Equal(t, int64(0), render.PaymentForAgreementLevelItem(event, 2))
	assert.Equal(t, int64(0), render.PaymentForAgreementLevelItem(nil, 1))
}

func TestPaymentTotals(t *testing.T) {
	items := []render.ItemPayments{
		{FirstPaymentPence: 1204, SubsequentPaymentPence: 1201, AnnualPaymentPence: 4806},
		{FirstPaymentPence: 6803, SubsequentPaymentPence: 6800, AnnualPaymentPence: 27200},
		{}, // missing amounts default to zero
	}

	assert.Equal(t, int64(8007), render.TotalFirstPayment(items))
	assert.Equal(t, int64(8001), render.TotalSubsequentPayment(items))
	assert.Equal(t, int64(32006), render.TotalAnnualPayment(items))

	assert.Equal(t, int64(0), render.TotalFirstPayment(nil))
}
