package routes

import (
	adminController "github.com/Pluviophile2607/aizboostr-new/controllers/admin"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	app.Post("/api/admin/login", adminController.AdminLogin)
	app.Get("/api/admin/stats", adminController.GetStats)
	app.Get("/api/admin/payments", adminController.GetPayments)
	app.Get("/api/admin/payment/:id/receipt", adminController.GetReceipt)
}
