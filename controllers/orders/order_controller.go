package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pluviophile2607/aizboostr-new/configs"
	"github.com/Pluviophile2607/aizboostr-new/models"
	"github.com/Pluviophile2607/aizboostr-new/pricing"
	"github.com/Pluviophile2607/aizboostr-new/responses"
)

// CreateOrderRequest holds the data required to create a Razorpay order.
type CreateOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// VerifyPaymentRequest holds the data for payment verification.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// CreateOrder creates a Razorpay order for the checkout widget. The
// amount is in major units and converted to paise for the gateway.
func CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	var orderReq CreateOrderRequest
	if err := c.BodyParser(&orderReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
			Result:  nil,
		})
	}

	var user models.User
	if err := configs.UserCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
			Result:  nil,
		})
	}

	orderAmountPaise := pricing.RupeesToPaise(orderReq.Amount)
	if orderAmountPaise < pricing.MinGatewayPaise {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Razorpay requires a minimum payment of ₹1.00",
			Result:  nil,
		})
	}

	currency := "INR"
	if orderReq.Currency != "" {
		currency = orderReq.Currency
	}

	razorpayKeyID := configs.EnvRazorpayKeyId()
	client := razorpay.NewClient(razorpayKeyID, configs.EnvRazorpayKeySecret())

	data := map[string]interface{}{
		"amount":   orderAmountPaise,
		"currency": currency,
		"receipt":  "receipt_" + uuid.NewString(),
	}

	razorpayOrder, err := client.Order.Create(data, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create Razorpay order: " + err.Error(),
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"razorpayId": razorpayOrder["id"],
			"amount":     razorpayOrder["amount"],
			"currency":   razorpayOrder["currency"],
			"key_id":     razorpayKeyID,
			"prefill": fiber.Map{
				"name":    user.Name,
				"email":   user.Email,
				"contact": user.MobileNumber,
			},
		},
	})
}

// VerifyPayment checks the gateway callback signature and echoes the
// identifiers back on success.
func VerifyPayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	var verifyReq VerifyPaymentRequest
	if err := c.BodyParser(&verifyReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	if !VerifySignature(verifyReq.OrderID, verifyReq.PaymentID, verifyReq.Signature, configs.EnvRazorpayKeySecret()) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid payment signature",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Payment verified successfully",
		Result: &fiber.Map{
			"orderId":   verifyReq.OrderID,
			"paymentId": verifyReq.PaymentID,
		},
	})
}
