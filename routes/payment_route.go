package routes

import (
	orderController "github.com/Pluviophile2607/aizboostr-new/controllers/orders"
	paymentController "github.com/Pluviophile2607/aizboostr-new/controllers/payment"
	"github.com/Pluviophile2607/aizboostr-new/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/api/payment/save", paymentController.SavePayment)

	app.Post("/api/payment/qr-payment", paymentController.SaveQRPayment)

	app.Get("/api/payment/history", paymentController.GetPaymentHistory)

	app.Post("/api/payment/create-order", middlewares.AuthMiddleware, orderController.CreateOrder)

	app.Post("/api/payment/verify", middlewares.AuthMiddleware, orderController.VerifyPayment)
}
