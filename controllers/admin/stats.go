package controllers

import (
	"sort"

	"github.com/Pluviophile2607/aizboostr-new/models"
)

// RecentPayment is one row of the dashboard's latest-activity list.
type RecentPayment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// PaymentBreakdown counts manual payments by declared type.
type PaymentBreakdown struct {
	Full      int `json:"full"`
	Advance   int `json:"advance"`
	Clearance int `json:"clearance"`
}

// StatusBreakdown counts manual payments by review state.
type StatusBreakdown struct {
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
}

// Stats is the admin dashboard summary over both payment collections.
type Stats struct {
	TotalEarnings    float64          `json:"totalEarnings"`
	TotalUsers       int              `json:"totalUsers"`
	TotalPayments    int              `json:"totalPayments"`
	QRPayments       int              `json:"qrPayments"`
	RazorpayPayments int              `json:"razorpayPayments"`
	PaymentBreakdown PaymentBreakdown `json:"paymentBreakdown"`
	StatusBreakdown  StatusBreakdown  `json:"statusBreakdown"`
	RecentPayments   []RecentPayment  `json:"recentPayments"`
}

// paymentSummary is the common view both record shapes collapse into, so
// earnings and user counts are computed once instead of per collection.
type paymentSummary struct {
	email  string
	amount float64
}

// ComputeStats aggregates the full record sets in memory. Fine at the
// transaction volumes of a single storefront; fetched fresh per request.
func ComputeStats(qrPayments []models.QRPayment, payments []models.Payment) Stats {
	summaries := make([]paymentSummary, 0, len(qrPayments)+len(payments))
	for _, p := range qrPayments {
		amount := p.AmountPaid
		if amount == 0 {
			amount = p.Amount
		}
		summaries = append(summaries, paymentSummary{email: p.Email, amount: amount})
	}
	for _, p := range payments {
		summaries = append(summaries, paymentSummary{email: p.Email, amount: p.Amount})
	}

	stats := Stats{
		TotalPayments:    len(summaries),
		QRPayments:       len(qrPayments),
		RazorpayPayments: len(payments),
		RecentPayments:   []RecentPayment{},
	}

	users := map[string]struct{}{}
	for _, s := range summaries {
		stats.TotalEarnings += s.amount
		users[s.email] = struct{}{}
	}
	stats.TotalUsers = len(users)

	for _, p := range qrPayments {
		switch p.PaymentType {
		case models.PaymentTypeFull:
			stats.PaymentBreakdown.Full++
		case models.PaymentTypeAdvance:
			stats.PaymentBreakdown.Advance++
		case models.PaymentTypeClearance:
			stats.PaymentBreakdown.Clearance++
		}
		switch p.Status {
		case models.QRStatusPending:
			stats.StatusBreakdown.Pending++
		case models.QRStatusVerified:
			stats.StatusBreakdown.Verified++
		case models.QRStatusRejected:
			stats.StatusBreakdown.Rejected++
		}
	}

	recent := make([]models.QRPayment, len(qrPayments))
	copy(recent, qrPayments)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for _, p := range recent {
		amount := p.AmountPaid
		if amount == 0 {
			amount = p.Amount
		}
		totalAmount := p.TotalAmount
		if totalAmount == 0 {
			totalAmount = p.Amount
		}
		stats.RecentPayments = append(stats.RecentPayments, RecentPayment{
			ID:            p.Id.Hex(),
			Name:          p.Name,
			Email:         p.Email,
			Amount:        amount,
			TotalAmount:   totalAmount,
			PaymentStatus: p.PaymentStatus,
			Status:        p.Status,
			CreatedAt:     p.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		})
	}

	return stats
}
