package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"talentflow-backend/lib/faults"
	apimodels "talentflow-backend/models/api"
)

// Simulate makes the backend behave like a remote API: every call waits a
// bounded random latency, and mutating calls may fail with an injected 500.
// Reads never fail artificially, so optimistic-update bugs stay observable
// without the noise of flaky fetches.
func Simulate(policy faults.Policy) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if d := policy.Latency(); d > 0 {
			time.Sleep(d)
		}
		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead:
		default:
			if policy.FailMutation() {
				return ctx.Status(fiber.StatusInternalServerError).
					JSON(apimodels.NewError("injected server error"))
			}
		}
		return ctx.Next()
	}
}
