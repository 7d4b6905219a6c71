package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingPayment is the user's outstanding advance balance. Either fully
// cleared (amount 0, isPending false) or exactly one 50% balance.
type PendingPayment struct {
	Amount            float64       `bson:"amount" json:"amount"`
	IsPending         bool          `bson:"isPending" json:"isPending"`
	OriginalPaymentID string        `bson:"originalPaymentId,omitempty" json:"originalPaymentId,omitempty"`
	ProductDetails    []interface{} `bson:"productDetails" json:"productDetails"`
}

type User struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Password       string             `bson:"password,omitempty" json:"password,omitempty"`
	MobileNumber   string             `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	GoogleID       string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	PendingPayment PendingPayment     `bson:"pendingPayment" json:"pendingPayment"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
