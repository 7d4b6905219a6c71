package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPendingPaymentAdvance(t *testing.T) {
	details := []interface{}{map[string]interface{}{"name": "Growth Plan"}}

	next := NextPendingPayment(PaymentTypeAdvance, 5000, "pay_123", details)

	assert.True(t, next.IsPending)
	assert.Equal(t, 5000.0, next.Amount)
	assert.Equal(t, "pay_123", next.OriginalPaymentID)
	assert.Equal(t, details, next.ProductDetails)
}

func TestNextPendingPaymentClearance(t *testing.T) {
	// A clearance clears regardless of the amount paid.
	next := NextPendingPayment(PaymentTypeClearance, 5000, "pay_456", nil)

	assert.False(t, next.IsPending)
	assert.Equal(t, 0.0, next.Amount)
	assert.Empty(t, next.OriginalPaymentID)
	assert.Empty(t, next.ProductDetails)
}

func TestNextPendingPaymentFullForcesClear(t *testing.T) {
	// A full payment resets the state even if nothing was outstanding.
	assert.Equal(t, ClearedPendingPayment(), NextPendingPayment(PaymentTypeFull, 9000, "pay_789", nil))

	// Unknown or absent types behave like full payments.
	assert.Equal(t, ClearedPendingPayment(), NextPendingPayment("", 9000, "pay_789", nil))
}

func TestAdvanceThenClearanceSequence(t *testing.T) {
	state := NextPendingPayment(PaymentTypeAdvance, 5000, "pay_1", nil)
	assert.True(t, state.IsPending)
	assert.Equal(t, 5000.0, state.Amount)

	state = NextPendingPayment(PaymentTypeClearance, 5000, "pay_2", nil)
	assert.False(t, state.IsPending)
	assert.Equal(t, 0.0, state.Amount)
	assert.Empty(t, state.OriginalPaymentID)
}

func TestStatusForPaymentType(t *testing.T) {
	assert.Equal(t, PaymentStatusAdvancePaid, StatusForPaymentType(PaymentTypeAdvance))
	assert.Equal(t, PaymentStatusClearancePaid, StatusForPaymentType(PaymentTypeClearance))
	assert.Equal(t, PaymentStatusSuccess, StatusForPaymentType(PaymentTypeFull))
	assert.Equal(t, PaymentStatusSuccess, StatusForPaymentType(""))
}

func TestDeriveQRAmounts(t *testing.T) {
	total, paid, label := DeriveQRAmounts(PaymentTypeAdvance, 2000)
	assert.Equal(t, 4000.0, total)
	assert.Equal(t, 2000.0, paid)
	assert.Equal(t, QRLabelAdvance, label)

	total, paid, label = DeriveQRAmounts(PaymentTypeClearance, 2000)
	assert.Equal(t, 4000.0, total)
	assert.Equal(t, 2000.0, paid)
	assert.Equal(t, QRLabelClearance, label)

	total, paid, label = DeriveQRAmounts(PaymentTypeFull, 2000)
	assert.Equal(t, 2000.0, total)
	assert.Equal(t, 2000.0, paid)
	assert.Equal(t, QRLabelFull, label)
}
