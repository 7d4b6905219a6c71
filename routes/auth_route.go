package routes

import (
	controllers "github.com/Pluviophile2607/aizboostr-new/controllers/auth"
	"github.com/Pluviophile2607/aizboostr-new/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/api/auth/register", controllers.Register)
	app.Post("/api/auth/login", controllers.Login)
	app.Post("/api/auth/google-login", controllers.GoogleLogin)
	app.Put("/api/auth/update-profile", middlewares.AuthMiddleware, controllers.UpdateProfile)
	app.Get("/api/auth/me", middlewares.AuthMiddleware, controllers.Me)
}
