package courseValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateCourseValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/t", CreateCourse(), func(c *fiber.Ctx) error {
		require.NotNil(t, c.Locals("validatedCourse"))
		return c.SendStatus(fiber.StatusOK)
	})

	require.Equal(t, fiber.StatusOK,
		postJSON(t, app, "/t", `{"title":"Math Basics","description":"Fractions and decimals","stars":20}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"title":"ab","description":"Fractions and decimals"}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"title":"Math Basics","description":"ok"}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"title":"Math Basics","description":"Fractions and decimals","stars":-1}`))
}

func TestRequestCourseValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/t", RequestCourse(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	require.Equal(t, fiber.StatusOK, postJSON(t, app, "/t", `{"course_code":"AB12C"}`))
	require.Equal(t, fiber.StatusOK, postJSON(t, app, "/t", `{"course_code":" AB12C "}`))
	require.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/t", `{"course_code":"AB12"}`))
	require.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/t", `{}`))
}

func TestCourseIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/t/:id", CourseID(), func(c *fiber.Ctx) error {
		require.Equal(t, 7, c.Locals("courseID"))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/t/7", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/t/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/t/0", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddQuestionValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/t/:id", AddQuestion(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	require.Equal(t, fiber.StatusOK, postJSON(t, app, "/t/1",
		`{"text":"2+2?","answers":[{"text":"4","is_correct":true},{"text":"5","is_correct":false}]}`))

	// Fewer than two answers.
	require.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/t/1",
		`{"text":"2+2?","answers":[{"text":"4","is_correct":true}]}`))

	// No correct answer.
	require.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/t/1",
		`{"text":"2+2?","answers":[{"text":"4","is_correct":false},{"text":"5","is_correct":false}]}`))

	// Two correct answers.
	require.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/t/1",
		`{"text":"2+2?","answers":[{"text":"4","is_correct":true},{"text":"5","is_correct":true}]}`))

	require.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/t/1",
		`{"text":"","answers":[{"text":"4","is_correct":true},{"text":"5","is_correct":false}]}`))
}

func TestCourseModulePairParams(t *testing.T) {
	app := fiber.New()
	app.Get("/t/:course_id/:module_id", CourseModulePair(), func(c *fiber.Ctx) error {
		require.Equal(t, 3, c.Locals("courseID"))
		require.Equal(t, 9, c.Locals("moduleID"))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/t/3/9", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/t/3/x", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
