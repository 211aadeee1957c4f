package notificationValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
)

// NotificationID validates requests addressed to a single notification
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Notification ID!", nil)
		}

		c.Locals("notificationID", id)
		return c.Next()
	}
}
