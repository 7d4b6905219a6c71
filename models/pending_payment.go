package models

// ClearedPendingPayment is the state with nothing outstanding.
func ClearedPendingPayment() PendingPayment {
	return PendingPayment{
		Amount:         0,
		IsPending:      false,
		ProductDetails: []interface{}{},
	}
}

// NextPendingPayment computes the user's pending-payment state after a
// payment of the given type is recorded.
//
// An advance leaves the same amount outstanding again (the split is
// assumed to be exactly 50/50, the remainder is not validated
// separately). A clearance clears regardless of prior state, with no
// check that the cleared amount matches the balance. A full payment, or
// an unknown type, also resets to cleared even if nothing was pending.
func NextPendingPayment(paymentType string, amount float64, paymentID string, productDetails []interface{}) PendingPayment {
	if paymentType == PaymentTypeAdvance {
		return PendingPayment{
			Amount:            amount,
			IsPending:         true,
			OriginalPaymentID: paymentID,
			ProductDetails:    productDetails,
		}
	}
	return ClearedPendingPayment()
}
