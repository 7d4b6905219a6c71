package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Pluviophile2607/aizboostr-new/configs"
	"github.com/Pluviophile2607/aizboostr-new/models"
	"github.com/Pluviophile2607/aizboostr-new/pricing"
	"github.com/Pluviophile2607/aizboostr-new/responses"
)

// maxReceiptSize caps the uploaded receipt image at 5 MB.
const maxReceiptSize = 5 << 20

// SavePaymentRequest holds a gateway-confirmed payment. CartTotal and
// CouponCode carry the pricing inputs so the payable amount can be
// recomputed server-side instead of trusting the client's figure.
type SavePaymentRequest struct {
	Name           string        `json:"name"`
	MobileNumber   string        `json:"mobileNumber"`
	Email          string        `json:"email"`
	Amount         float64       `json:"amount"`
	ProductDetails []interface{} `json:"productDetails"`
	TransactionID  string        `json:"transactionId"`
	PaymentID      string        `json:"paymentId"`
	PaymentType    string        `json:"paymentType"`
	CartTotal      float64       `json:"cartTotal"`
	CouponCode     string        `json:"couponCode"`
}

// SavePayment persists a gateway-confirmed payment and updates the
// user's pending-payment state. The payment record and the user update
// are two sequential writes with no transaction around them; a crash in
// between leaves the payment saved without the state change.
func SavePayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req SavePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if req.Name == "" || req.MobileNumber == "" || req.Email == "" || req.Amount <= 0 || req.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing required payment fields",
			Result:  nil,
		})
	}

	quote, ok, msg := verifySubmittedAmount(ctx, req.Email, req.PaymentType, req.Amount, req.CartTotal, req.CouponCode, pricing.MethodRazorpay)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
			Result:  nil,
		})
	}

	if !quote.MeetsGatewayMinimum() {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Razorpay requires a minimum payment of ₹1.00",
			Result:  nil,
		})
	}

	payment := models.Payment{
		Id:             primitive.NewObjectID(),
		Name:           req.Name,
		MobileNumber:   req.MobileNumber,
		Email:          req.Email,
		Amount:         req.Amount,
		ProductDetails: req.ProductDetails,
		TransactionID:  req.TransactionID,
		PaymentID:      req.PaymentID,
		Status:         models.StatusForPaymentType(req.PaymentType),
		CreatedAt:      time.Now(),
	}

	if _, err := configs.PaymentCollection().InsertOne(ctx, payment); err != nil {
		log.Printf("payment save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save payment",
			Result:  nil,
		})
	}

	applyPendingTransition(ctx, req.Email, req.PaymentType, req.Amount, req.PaymentID, req.ProductDetails)

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Payment saved successfully",
		Result: &fiber.Map{
			"payment": payment,
		},
	})
}

// SaveQRPayment persists a manually-paid order with its uploaded receipt.
// The image is held in memory and stored inline as base64; review status
// always starts pending, verification happens outside this service.
func SaveQRPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := c.FormValue("name")
	mobileNumber := c.FormValue("mobileNumber")
	email := c.FormValue("email")
	paymentType := c.FormValue("paymentType")
	couponCode := c.FormValue("couponCode")

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid amount",
			Result:  nil,
		})
	}

	cartTotal, _ := strconv.ParseFloat(c.FormValue("cartTotal"), 64)

	if name == "" || mobileNumber == "" || email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing required payment fields",
			Result:  nil,
		})
	}

	var productDetails []interface{}
	if raw := c.FormValue("productDetails"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &productDetails); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid product details",
				Result:  nil,
			})
		}
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Receipt image is required",
			Result:  nil,
		})
	}

	if fileHeader.Size > maxReceiptSize {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Receipt image must be under 5MB",
			Result:  nil,
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Receipt must be an image file",
			Result:  nil,
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to read receipt image",
			Result:  nil,
		})
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxReceiptSize))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to read receipt image",
			Result:  nil,
		})
	}

	if _, ok, msg := verifySubmittedAmount(ctx, email, paymentType, amount, cartTotal, couponCode, pricing.MethodQRCode); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: msg,
			Result:  nil,
		})
	}

	totalAmount, amountPaid, label := models.DeriveQRAmounts(paymentType, amount)
	if paymentType == "" {
		paymentType = models.PaymentTypeFull
	}

	qrPayment := models.QRPayment{
		Id:             primitive.NewObjectID(),
		Name:           name,
		MobileNumber:   mobileNumber,
		Email:          email,
		Amount:         amount,
		TotalAmount:    totalAmount,
		AmountPaid:     amountPaid,
		ProductDetails: productDetails,
		ReceiptImage: models.ReceiptImage{
			Data:        base64.StdEncoding.EncodeToString(imageData),
			ContentType: contentType,
		},
		PaymentType:   paymentType,
		PaymentStatus: label,
		Status:        models.QRStatusPending,
		CreatedAt:     time.Now(),
	}

	if _, err := configs.QRPaymentCollection().InsertOne(ctx, qrPayment); err != nil {
		log.Printf("qr payment save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save payment",
			Result:  nil,
		})
	}

	applyPendingTransition(ctx, email, paymentType, amount, qrPayment.Id.Hex(), productDetails)

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Payment submitted for verification",
		Result: &fiber.Map{
			"id":            qrPayment.Id.Hex(),
			"totalAmount":   qrPayment.TotalAmount,
			"amountPaid":    qrPayment.AmountPaid,
			"paymentStatus": qrPayment.PaymentStatus,
			"status":        qrPayment.Status,
		},
	})
}

// GetPaymentHistory lists gateway payments, newest first.
func GetPaymentHistory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := configs.PaymentCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payment history",
			Result:  nil,
		})
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode payment history",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Payment history fetched successfully",
		Result: &fiber.Map{
			"payments": payments,
		},
	})
}

// verifySubmittedAmount recomputes the payable amount from the pricing
// inputs and compares it with what the client submitted, in paise. For a
// clearance the expected amount comes from the user's stored pending
// balance, not from the request.
func verifySubmittedAmount(ctx context.Context, email, paymentType string, amount, cartTotal float64, couponCode string, method pricing.Method) (pricing.Quote, bool, string) {
	var in pricing.Inputs
	in.Method = method

	if paymentType == models.PaymentTypeClearance {
		var user models.User
		err := configs.UserCollection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err != nil || !user.PendingPayment.IsPending {
			return pricing.Quote{}, false, "No pending payment found for this account"
		}
		in.HasPending = true
		in.PendingAmount = user.PendingPayment.Amount
	} else {
		in.CartTotal = cartTotal
		in.DiscountApplied = pricing.ValidCoupon(couponCode)
		in.Installment = paymentType == models.PaymentTypeAdvance
	}

	quote := pricing.Compute(in)
	submittedPaise := pricing.RupeesToPaise(amount)
	if submittedPaise != quote.PayablePaise {
		return quote, false, "Submitted amount does not match the computed payable amount"
	}
	return quote, true, ""
}

// applyPendingTransition updates the user's pending-payment state as a
// side effect of the payment save. Last write wins; concurrent checkouts
// for the same user are not serialized. A missing user is a no-op.
func applyPendingTransition(ctx context.Context, email, paymentType string, amount float64, paymentID string, productDetails []interface{}) {
	next := models.NextPendingPayment(paymentType, amount, paymentID, productDetails)
	update := bson.M{"$set": bson.M{"pendingPayment": next, "updatedAt": time.Now()}}
	if _, err := configs.UserCollection().UpdateOne(ctx, bson.M{"email": email}, update); err != nil {
		// The payment record is already saved; reconciliation is manual.
		log.Printf("pending payment update failed for %s: %v", email, err)
	}
}
