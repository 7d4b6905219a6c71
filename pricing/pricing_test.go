package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCoupon(t *testing.T) {
	assert.True(t, ValidCoupon("ZED10"))
	assert.True(t, ValidCoupon("zed10"))
	assert.True(t, ValidCoupon("Zed10"))
	assert.False(t, ValidCoupon(" ZED10"))
	assert.False(t, ValidCoupon("ZED20"))
	assert.False(t, ValidCoupon(""))
}

func TestRupeesToPaiseRoundTrip(t *testing.T) {
	// 29 paise displays as ₹0.29, whose float64 is 0.28999...; a
	// truncating conversion turns it back into 28 paise.
	assert.Equal(t, int64(29), RupeesToPaise(Quote{PayablePaise: 29}.PayableRupees()))

	// Every paise amount up to ₹100,000 must survive the trip through
	// its rupee display value unchanged.
	for paise := int64(1); paise <= 10_000_000; paise++ {
		q := Quote{PayablePaise: paise}
		if got := RupeesToPaise(q.PayableRupees()); got != paise {
			t.Fatalf("RupeesToPaise(%v rupees) = %d, want %d", q.PayableRupees(), got, paise)
		}
	}
}

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name         string
		cartTotal    float64
		discount     bool
		wantSubtotal int64
		wantDiscount int64
		wantFinal    int64
	}{
		{"no discount", 10000, false, 1000000, 0, 1000000},
		{"ten percent off", 10000, true, 1000000, 100000, 900000},
		{"zero cart", 0, true, 0, 0, 0},
		{"half paise rounds up", 0.125, false, 13, 0, 13},
		{"discount rounds half up", 10.05, true, 1005, 101, 904},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Compute(Inputs{CartTotal: tt.cartTotal, DiscountApplied: tt.discount, Method: MethodQRCode})
			assert.Equal(t, tt.wantSubtotal, q.SubtotalPaise)
			assert.Equal(t, tt.wantDiscount, q.DiscountPaise)
			assert.Equal(t, tt.wantFinal, q.FinalTotalPaise)
			assert.GreaterOrEqual(t, q.FinalTotalPaise, int64(0))
		})
	}
}

func TestComputeInstallment(t *testing.T) {
	full := Compute(Inputs{CartTotal: 9000, Method: MethodQRCode})
	assert.Equal(t, int64(900000), full.BasePayablePaise)

	half := Compute(Inputs{CartTotal: 9000, Installment: true, Method: MethodQRCode})
	assert.Equal(t, int64(450000), half.BasePayablePaise)

	// Odd final totals round half up on the split.
	odd := Compute(Inputs{CartTotal: 0.03, Installment: true, Method: MethodQRCode})
	assert.Equal(t, int64(2), odd.BasePayablePaise)
}

func TestComputePendingOverridesCart(t *testing.T) {
	// With a pending balance the cart contents are irrelevant.
	q := Compute(Inputs{
		CartTotal:       123456,
		DiscountApplied: true,
		Installment:     true,
		Method:          MethodQRCode,
		HasPending:      true,
		PendingAmount:   5000,
	})
	assert.Equal(t, int64(500000), q.BasePayablePaise)
	assert.Equal(t, int64(500000), q.PayablePaise)
}

func TestComputePlatformFee(t *testing.T) {
	gateway := Compute(Inputs{CartTotal: 100, Method: MethodRazorpay})
	assert.Equal(t, int64(250), gateway.PlatformFeePaise)
	assert.Equal(t, int64(10250), gateway.PayablePaise)

	manual := Compute(Inputs{CartTotal: 100, Method: MethodQRCode})
	assert.Equal(t, int64(0), manual.PlatformFeePaise)
	assert.Equal(t, int64(10000), manual.PayablePaise)

	// The fee floors rather than rounds: 2.5% of 999 paise is 24.975.
	floored := Compute(Inputs{CartTotal: 9.99, Method: MethodRazorpay})
	assert.Equal(t, int64(24), floored.PlatformFeePaise)
}

func TestComputeCouponInstallmentScenario(t *testing.T) {
	// ₹10,000 cart, ZED10 applied, installment, gateway method:
	// discount ₹1,000 → final ₹9,000 → base ₹4,500 → fee ₹112.50.
	q := Compute(Inputs{
		CartTotal:       10000,
		DiscountApplied: ValidCoupon("ZED10"),
		Installment:     true,
		Method:          MethodRazorpay,
	})
	assert.Equal(t, int64(100000), q.DiscountPaise)
	assert.Equal(t, int64(900000), q.FinalTotalPaise)
	assert.Equal(t, int64(450000), q.BasePayablePaise)
	assert.Equal(t, int64(11250), q.PlatformFeePaise)
	assert.Equal(t, int64(461250), q.PayablePaise)
	assert.Equal(t, 4612.50, q.PayableRupees())
}

func TestMeetsGatewayMinimum(t *testing.T) {
	assert.False(t, Compute(Inputs{CartTotal: 0.50, Method: MethodRazorpay}).MeetsGatewayMinimum())
	assert.True(t, Compute(Inputs{CartTotal: 1.00, Method: MethodRazorpay}).MeetsGatewayMinimum())
	assert.False(t, Compute(Inputs{CartTotal: 1.50, Installment: true, Method: MethodRazorpay}).MeetsGatewayMinimum())
}
