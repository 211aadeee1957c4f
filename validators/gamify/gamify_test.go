package gamifyValidator

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

func TestCreateLevelValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/t", CreateLevel(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	require.Equal(t, fiber.StatusOK,
		postJSON(t, app, "/t", `{"number":1,"name":"Newcomer","min_stars":0,"max_stars":100}`))

	// min must stay below max, range is half-open.
	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"number":2,"name":"Flat","min_stars":100,"max_stars":100}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"number":0,"name":"Zero","min_stars":0,"max_stars":100}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"number":1,"name":"","min_stars":0,"max_stars":100}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"number":1,"name":"Neg","min_stars":-5,"max_stars":100}`))
}

func TestCreateAchievementValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/t", CreateAchievement(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	require.Equal(t, fiber.StatusOK,
		postJSON(t, app, "/t", `{"code":"quiz_10","title":"Quiz Taker","condition_type":"passed_quizzes","condition_value":10}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"code":"","title":"Quiz Taker","condition_type":"passed_quizzes","condition_value":10}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"code":"quiz_10","title":"Quiz Taker","condition_type":"made_up","condition_value":10}`))

	require.Equal(t, fiber.StatusBadRequest,
		postJSON(t, app, "/t", `{"code":"quiz_10","title":"Quiz Taker","condition_type":"passed_quizzes","condition_value":0}`))
}

func TestUpdateAchievementValidation(t *testing.T) {
	app := fiber.New()
	app.Put("/t/:id", UpdateAchievement(), func(c *fiber.Ctx) error {
		require.Equal(t, 4, c.Locals("achievementID"))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PUT", "/t/4", strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("PUT", "/t/4", strings.NewReader(`{"condition_value":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
