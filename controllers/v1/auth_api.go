package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentflow-backend/controllers"
	authhandler "talentflow-backend/lib/auth"
	"talentflow-backend/middleware"
	apimodels "talentflow-backend/models/api"
	authapimodels "talentflow-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
	handler authhandler.Provider
}

func InitAuthApiRouters(app fiber.Router, handler authhandler.Provider, jwtSecret string) {
	controller := authApiController{handler: handler}
	app.Route("/auth", func(router fiber.Router) {
		router.Post("/signup", controller.signup)
		router.Post("/signin", controller.signin)
		router.Post("/logout", controller.logout)
		router.Get("/verify", middleware.AuthorizationRequired(jwtSecret), controller.verify)
	})
}

// @Summary Register a user
// @Tags Auth
// @Param body body authapimodels.SignupRequest true "request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @router /auth/signup [post]
func (c *authApiController) signup(ctx *fiber.Ctx) error {
	var payload authapimodels.SignupRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Signup(payload)
	if err != nil {
		return c.SendError(ctx, err, "signup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Sign in
// @Tags Auth
// @Param body body authapimodels.SigninRequest true "request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 401 {object} apimodels.Response
// @router /auth/signin [post]
func (c *authApiController) signin(ctx *fiber.Ctx) error {
	var payload authapimodels.SigninRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.handler.Signin(payload)
	if err != nil {
		return c.SendError(ctx, err, "signin failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Log out (tokens are stateless; the client discards its copy)
// @Tags Auth
// @Success 200 {object} apimodels.Response
// @router /auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Validate the current session
// @Tags Auth
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @router /auth/verify [get]
func (c *authApiController) verify(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("missing or invalid token"))
	}
	view, err := c.handler.Verify(userID)
	if err != nil {
		return c.SendError(ctx, err, "verification failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
