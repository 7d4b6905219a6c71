// Package pricing computes checkout amounts in integer paise so that
// discount, installment and fee arithmetic never drifts from what the
// payment gateway charges.
package pricing

import (
	"math"
	"strings"
)

// Method is the way the customer pays.
type Method string

const (
	MethodRazorpay Method = "razorpay"
	MethodQRCode   Method = "qrcode"
)

const (
	// CouponCode is the only accepted coupon. Matched case-insensitively,
	// no expiry, no usage limit.
	CouponCode = "ZED10"

	discountRate    = 0.10
	installmentRate = 0.5
	platformFeeRate = 0.025

	// MinGatewayPaise is Razorpay's documented minimum charge (₹1.00).
	MinGatewayPaise int64 = 100
)

// ValidCoupon reports whether code unlocks the discount.
func ValidCoupon(code string) bool {
	return strings.EqualFold(code, CouponCode)
}

// RupeesToPaise converts a major-unit amount to paise, rounding half up.
// Every rupee figure crossing back into integer arithmetic must go
// through this; truncating instead drops a paise for most amounts.
func RupeesToPaise(v float64) int64 {
	return roundPaise(v * 100)
}

// Inputs describes one checkout attempt. Amounts are in major units
// (rupees) as the storefront presents them.
type Inputs struct {
	CartTotal       float64
	DiscountApplied bool
	Installment     bool
	Method          Method

	// HasPending overrides the cart entirely: the payable base becomes the
	// outstanding balance, whatever is currently in the cart.
	HasPending    bool
	PendingAmount float64
}

// Quote is the computed breakdown, all values in paise.
type Quote struct {
	SubtotalPaise    int64
	DiscountPaise    int64
	FinalTotalPaise  int64
	BasePayablePaise int64
	PlatformFeePaise int64
	PayablePaise     int64
}

// PayableRupees returns the final amount in major units for display and
// for the gateway widget prefill.
func (q Quote) PayableRupees() float64 {
	return float64(q.PayablePaise) / 100
}

// MeetsGatewayMinimum reports whether the quote can be charged through
// the gateway at all.
func (q Quote) MeetsGatewayMinimum() bool {
	return q.PayablePaise >= MinGatewayPaise
}

// Compute derives the payable amount. Subtotal, discount and installment
// base round half-up; the platform fee floors. The asymmetry matches the
// gateway's own arithmetic, so do not "fix" it.
func Compute(in Inputs) Quote {
	subtotal := RupeesToPaise(in.CartTotal)
	var discount int64
	if in.DiscountApplied {
		discount = roundPaise(float64(subtotal) * discountRate)
	}
	final := subtotal - discount

	var base int64
	switch {
	case in.HasPending:
		base = RupeesToPaise(in.PendingAmount)
	case in.Installment:
		base = roundPaise(float64(final) * installmentRate)
	default:
		base = final
	}

	var fee int64
	if in.Method == MethodRazorpay {
		fee = int64(math.Floor(float64(base) * platformFeeRate))
	}

	return Quote{
		SubtotalPaise:    subtotal,
		DiscountPaise:    discount,
		FinalTotalPaise:  final,
		BasePayablePaise: base,
		PlatformFeePaise: fee,
		PayablePaise:     base + fee,
	}
}

func roundPaise(v float64) int64 {
	return int64(math.Round(v))
}
