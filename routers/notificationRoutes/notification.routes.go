package notificationRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/notification"
	"studytask/middleware"
	validators "studytask/validators/notification"
)

// SetupNotificationRoutes sets up the notification inbox routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification", middleware.JWTMiddleware)

	notificationGroup.Get("/list", controllers.MyNotifications)
	notificationGroup.Post("/read-all", controllers.MarkAllRead)
	notificationGroup.Post("/:id/read", validators.NotificationID(), controllers.MarkRead)
}
