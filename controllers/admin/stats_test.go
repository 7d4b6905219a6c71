package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pluviophile2607/aizboostr-new/models"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, nil)

	assert.Equal(t, 0.0, stats.TotalEarnings)
	assert.Equal(t, 0, stats.TotalUsers)
	assert.Equal(t, 0, stats.TotalPayments)
	assert.Empty(t, stats.RecentPayments)
}

func TestComputeStats(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	qrPayments := []models.QRPayment{
		{
			Id:            primitive.NewObjectID(),
			Name:          "Asha",
			Email:         "asha@example.com",
			Amount:        2000,
			TotalAmount:   4000,
			AmountPaid:    2000,
			PaymentType:   models.PaymentTypeAdvance,
			PaymentStatus: models.QRLabelAdvance,
			Status:        models.QRStatusPending,
			CreatedAt:     base,
		},
		{
			Id:            primitive.NewObjectID(),
			Name:          "Ravi",
			Email:         "ravi@example.com",
			Amount:        1000,
			TotalAmount:   1000,
			AmountPaid:    1000,
			PaymentType:   models.PaymentTypeFull,
			PaymentStatus: models.QRLabelFull,
			Status:        models.QRStatusVerified,
			CreatedAt:     base.Add(time.Hour),
		},
		{
			Id:            primitive.NewObjectID(),
			Name:          "Asha",
			Email:         "asha@example.com",
			Amount:        2000,
			TotalAmount:   4000,
			AmountPaid:    2000,
			PaymentType:   models.PaymentTypeClearance,
			PaymentStatus: models.QRLabelClearance,
			Status:        models.QRStatusRejected,
			CreatedAt:     base.Add(2 * time.Hour),
		},
	}

	payments := []models.Payment{
		{
			Id:     primitive.NewObjectID(),
			Name:   "Meera",
			Email:  "meera@example.com",
			Amount: 4612.50,
			Status: models.PaymentStatusAdvancePaid,
		},
		{
			Id:     primitive.NewObjectID(),
			Name:   "Asha",
			Email:  "asha@example.com",
			Amount: 500,
			Status: models.PaymentStatusSuccess,
		},
	}

	stats := ComputeStats(qrPayments, payments)

	assert.Equal(t, 2000.0+1000+2000+4612.50+500, stats.TotalEarnings)
	assert.Equal(t, 3, stats.TotalUsers) // asha appears in both sets, counted once
	assert.Equal(t, 5, stats.TotalPayments)
	assert.Equal(t, 3, stats.QRPayments)
	assert.Equal(t, 2, stats.RazorpayPayments)

	assert.Equal(t, PaymentBreakdown{Full: 1, Advance: 1, Clearance: 1}, stats.PaymentBreakdown)
	assert.Equal(t, StatusBreakdown{Pending: 1, Verified: 1, Rejected: 1}, stats.StatusBreakdown)

	// Recent payments come newest first.
	assert.Len(t, stats.RecentPayments, 3)
	assert.Equal(t, models.QRLabelClearance, stats.RecentPayments[0].PaymentStatus)
	assert.Equal(t, models.QRLabelFull, stats.RecentPayments[1].PaymentStatus)
	assert.Equal(t, models.QRLabelAdvance, stats.RecentPayments[2].PaymentStatus)
}

func TestComputeStatsRecentCapsAtFive(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var qrPayments []models.QRPayment
	for i := 0; i < 8; i++ {
		qrPayments = append(qrPayments, models.QRPayment{
			Id:         primitive.NewObjectID(),
			Email:      "user@example.com",
			Amount:     100,
			AmountPaid: 100,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}

	stats := ComputeStats(qrPayments, nil)

	assert.Len(t, stats.RecentPayments, 5)
	// The newest record leads the list.
	assert.Equal(t, qrPayments[7].Id.Hex(), stats.RecentPayments[0].ID)
}

func TestComputeStatsFallsBackToAmount(t *testing.T) {
	// Older records may predate the amountPaid field.
	qrPayments := []models.QRPayment{
		{Id: primitive.NewObjectID(), Email: "old@example.com", Amount: 750, CreatedAt: time.Now()},
	}

	stats := ComputeStats(qrPayments, nil)

	assert.Equal(t, 750.0, stats.TotalEarnings)
	assert.Equal(t, 750.0, stats.RecentPayments[0].Amount)
	assert.Equal(t, 750.0, stats.RecentPayments[0].TotalAmount)
}
