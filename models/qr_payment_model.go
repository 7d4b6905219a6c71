package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment types declared by the client at checkout.
const (
	PaymentTypeFull      = "full"
	PaymentTypeAdvance   = "advance"
	PaymentTypeClearance = "clearance"
)

// Human-readable payment status labels shown on the admin dashboard.
const (
	QRLabelFull      = "Full Payment"
	QRLabelAdvance   = "50% Advance Payment"
	QRLabelClearance = "Clearance Payment"
)

// Manual-review workflow states. Records are created pending; nothing in
// this service transitions them further.
const (
	QRStatusPending  = "pending"
	QRStatusVerified = "verified"
	QRStatusRejected = "rejected"
)

// ReceiptImage is the uploaded proof of payment, stored inline.
type ReceiptImage struct {
	Data        string `bson:"data" json:"data"` // base64 encoded
	ContentType string `bson:"contentType" json:"contentType"`
}

// QRPayment is a manually-verified payment: the customer pays by
// scanning a QR code out-of-band and uploads the receipt. Stored in the
// QR-Code-Payment database.
type QRPayment struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	MobileNumber   string             `bson:"mobileNumber" json:"mobileNumber" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Amount         float64            `bson:"amount" json:"amount" validate:"required"`
	TotalAmount    float64            `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
	AmountPaid     float64            `bson:"amountPaid" json:"amountPaid" validate:"required"`
	ProductDetails []interface{}      `bson:"productDetails" json:"productDetails"`
	ReceiptImage   ReceiptImage       `bson:"receiptImage" json:"receiptImage,omitempty"`
	PaymentType    string             `bson:"paymentType" json:"paymentType"`
	PaymentStatus  string             `bson:"paymentStatus" json:"paymentStatus"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// DeriveQRAmounts reconstructs the order total from the amount paid in
// this transaction. An advance is assumed to be exactly half, so the
// total is twice the paid amount; a clearance settles the other half of
// the same 50/50 split.
func DeriveQRAmounts(paymentType string, amount float64) (totalAmount, amountPaid float64, label string) {
	switch paymentType {
	case PaymentTypeAdvance:
		return amount * 2, amount, QRLabelAdvance
	case PaymentTypeClearance:
		return amount * 2, amount, QRLabelClearance
	default:
		return amount, amount, QRLabelFull
	}
}
