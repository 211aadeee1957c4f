package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/auth"
	"studytask/middleware"
	validators "studytask/validators/auth"
)

// SetupAuthRoutes sets up registration, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, controllers.Profile)
}
