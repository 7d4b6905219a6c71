package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Pluviophile2607/aizboostr-new/configs"
	"github.com/Pluviophile2607/aizboostr-new/models"
	"github.com/Pluviophile2607/aizboostr-new/responses"
)

// AdminLogin checks the configured admin credential pair. A single
// string-equality check against environment values, not a real
// access-control system.
func AdminLogin(c *fiber.Ctx) error {
	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	adminEmail := configs.EnvAdminEmail()
	adminPassword := configs.EnvAdminPassword()

	if adminEmail == "" || reqBody.Email != adminEmail || reqBody.Password != adminPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid credentials",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Result: &fiber.Map{
			"admin": fiber.Map{
				"email": adminEmail,
				"role":  "admin",
			},
		},
	})
}

// GetStats aggregates both payment collections into dashboard numbers.
func GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var qrPayments []models.QRPayment
	cursor, err := configs.QRPaymentCollection().Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payments",
			Result:  nil,
		})
	}
	if err := cursor.All(ctx, &qrPayments); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode payments",
			Result:  nil,
		})
	}

	var payments []models.Payment
	cursor, err = configs.PaymentCollection().Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payments",
			Result:  nil,
		})
	}
	if err := cursor.All(ctx, &payments); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode payments",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Stats fetched successfully",
		Result: &fiber.Map{
			"stats": ComputeStats(qrPayments, payments),
		},
	})
}

// GetPayments lists manual payments without the inline image data.
func GetPayments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"receiptImage.data": 0})

	cursor, err := configs.QRPaymentCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payments",
			Result:  nil,
		})
	}
	defer cursor.Close(ctx)

	payments := []fiber.Map{}
	for cursor.Next(ctx) {
		var payment models.QRPayment
		if err := cursor.Decode(&payment); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to decode payment",
				Result:  nil,
			})
		}

		payments = append(payments, fiber.Map{
			"id":             payment.Id.Hex(),
			"name":           payment.Name,
			"mobileNumber":   payment.MobileNumber,
			"email":          payment.Email,
			"amount":         payment.Amount,
			"totalAmount":    payment.TotalAmount,
			"amountPaid":     payment.AmountPaid,
			"productDetails": payment.ProductDetails,
			"paymentType":    payment.PaymentType,
			"paymentStatus":  payment.PaymentStatus,
			"status":         payment.Status,
			"createdAt":      payment.CreatedAt,
			"hasReceipt":     payment.ReceiptImage.ContentType != "",
			"receiptType":    payment.ReceiptImage.ContentType,
		})
	}

	if err := cursor.Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Cursor error",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Payments fetched successfully",
		Result: &fiber.Map{
			"payments": payments,
		},
	})
}

// GetReceipt returns the stored receipt image for one manual payment.
func GetReceipt(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	paymentID := c.Params("id")
	paymentObjectID, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid payment ID format",
			Result:  nil,
		})
	}

	var payment models.QRPayment
	err = configs.QRPaymentCollection().FindOne(ctx, bson.M{"_id": paymentObjectID}).Decode(&payment)
	if err == mongo.ErrNoDocuments || (err == nil && payment.ReceiptImage.Data == "") {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Receipt not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch receipt",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Receipt fetched successfully",
		Result: &fiber.Map{
			"receipt":     payment.ReceiptImage.Data,
			"contentType": payment.ReceiptImage.ContentType,
		},
	})
}
