package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gateway payment statuses, derived from the declared payment type at
// save time.
const (
	PaymentStatusSuccess       = "success"
	PaymentStatusAdvancePaid   = "advance_paid"
	PaymentStatusClearancePaid = "clearance_paid"
)

// Payment is a gateway-confirmed payment record, stored in the
// Payment-Records database.
type Payment struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	MobileNumber   string             `bson:"mobileNumber" json:"mobileNumber" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Amount         float64            `bson:"amount" json:"amount" validate:"required"`
	ProductDetails []interface{}      `bson:"productDetails" json:"productDetails"`
	TransactionID  string             `bson:"transactionId" json:"transactionId" validate:"required"`
	PaymentID      string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// StatusForPaymentType maps the declared payment type onto the stored
// record status.
func StatusForPaymentType(paymentType string) string {
	switch paymentType {
	case PaymentTypeAdvance:
		return PaymentStatusAdvancePaid
	case PaymentTypeClearance:
		return PaymentStatusClearancePaid
	default:
		return PaymentStatusSuccess
	}
}
