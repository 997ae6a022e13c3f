package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talentflow-backend/controllers"
	jobhandler "talentflow-backend/lib/job"
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
	handler jobhandler.Provider
}

func InitJobApiRouters(app fiber.Router, handler jobhandler.Provider) {
	controller := jobApiController{handler: handler}
	app.Route("/jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route("/:id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.archive)
			idRoute.Patch("/reorder", controller.reorder)
		})
	})
}

// @Summary List jobs
// @Tags Jobs
// @Param search query string false "substring over title/description/tags"
// @Param status query string false "active/archived/all"
// @Success 200 {object} apimodels.ListResponse{data=[]dbmodels.Job}
// @router /jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read list filters"))
	}
	list, total, err := c.handler.List(filter)
	if err != nil {
		return c.SendError(ctx, err, "failed to list jobs")
	}
	page, pageSize := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, total, page, pageSize))
}

// @Summary Create job
// @Tags Jobs
// @Param body body jobapimodels.JobData true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @Failure 400 {object} apimodels.Response
// @router /jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to create job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Get job by id
// @Tags Jobs
// @Param id path string true "rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @Failure 404 {object} apimodels.Response
// @router /jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err, "failed to fetch job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update job (partial)
// @Tags Jobs
// @Param id path string true "rec ID"
// @Param body body jobapimodels.JobPatch true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @router /jobs/{id} [patch]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobPatch
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to update job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Archive job (soft delete)
// @Tags Jobs
// @Param id path string true "rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @router /jobs/{id} [delete]
func (c *jobApiController) archive(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Archive(id)
	if err != nil {
		return c.SendError(ctx, err, "failed to archive job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Move job to a new board position
// @Tags Jobs
// @Param id path string true "rec ID"
// @Param body body jobapimodels.ReorderRequest true "request body"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Job} "all affected jobs"
// @router /jobs/{id}/reorder [patch]
func (c *jobApiController) reorder(ctx *fiber.Ctx) error {
	var payload jobapimodels.ReorderRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	affected, err := c.handler.Reorder(payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to reorder jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(affected))
}
