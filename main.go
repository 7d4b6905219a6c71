package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Pluviophile2607/aizboostr-new/configs"
	"github.com/Pluviophile2607/aizboostr-new/routes"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 6 * 1024 * 1024, // receipts are capped at 5MB, leave headroom for the rest of the form
	})

	app.Use(cors.New())

	configs.DB()

	routes.AuthRoutes(app)
	routes.PaymentRoutes(app)
	routes.AdminRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is running")
	})

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
