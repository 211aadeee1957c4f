package studentValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
)

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\+?\d{7,15}$`)
	return re.MatchString(phone)
}

// UpdateProfile validates a profile edit request body
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name      string `json:"name"`
			Phone     string `json:"phone"`
			AvatarURL string `json:"avatar_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Phone = strings.TrimSpace(reqData.Phone)

		if reqData.Name == "" && reqData.Phone == "" && reqData.AvatarURL == "" {
			errors["body"] = "Nothing to update!"
		}

		if reqData.Name != "" && len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Phone != "" && !isValidPhone(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
