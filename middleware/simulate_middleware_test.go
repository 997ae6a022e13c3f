package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"talentflow-backend/lib/faults"
	"talentflow-backend/middleware"
)

func newApp(policy faults.Policy) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Simulate(policy))
	app.Get("/ping", func(ctx *fiber.Ctx) error { return ctx.SendString("pong") })
	app.Post("/ping", func(ctx *fiber.Ctx) error { return ctx.SendString("pong") })
	return app
}

func TestInjectedFailureHitsMutationsOnly(t *testing.T) {
	app := newApp(faults.Script(true, true))

	// reads pass even while the script says fail
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/ping", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/ping", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// script exhausted, mutations succeed again
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/ping", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDisabledPolicyPassesEverything(t *testing.T) {
	app := newApp(faults.Disabled())
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		resp, err := app.Test(httptest.NewRequest(method, "/ping", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
