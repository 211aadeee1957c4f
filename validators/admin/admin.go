package adminValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// RequestID validates requests addressed to a single review request
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		c.Locals("requestID", requestID)
		return c.Next()
	}
}

// RejectRequest validates a rejection with an optional reason
func RejectRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("requestID", requestID)
		c.Locals("rejectionReason", strings.TrimSpace(reqData.Reason))
		return c.Next()
	}
}

// ReviewEditRequest validates an approve-or-reject decision for a
// profile edit request
func ReviewEditRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		reqData := new(struct {
			Approve *bool  `json:"approve"`
			Reason  string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Approve == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"approve": "Approve flag is required!",
			})
		}

		c.Locals("requestID", requestID)
		c.Locals("approveRequest", *reqData.Approve)
		c.Locals("rejectionReason", strings.TrimSpace(reqData.Reason))
		return c.Next()
	}
}

// StudentModulePair validates block/unblock of a module for a student
func StudentModulePair() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, ok := paramID(c, "student_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		moduleID, ok := paramID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("studentID", studentID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
