package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"talentflow-backend/controllers"
	assessmenthandler "talentflow-backend/lib/assessment"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"
)

type assessmentApiController struct {
	controllers.BaseAPIController
	handler assessmenthandler.Provider
}

func InitAssessmentApiRouters(app fiber.Router, handler assessmenthandler.Provider) {
	controller := assessmentApiController{handler: handler}
	app.Route("/assessments/:jobId", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.put)
		router.Post("/submit", controller.submit)
		router.Get("/responses", controller.responses)
	})
}

func getJobID(ctx *fiber.Ctx) (string, error) {
	jobID := ctx.Params("jobId")
	if jobID == "" {
		return "", errors.New("job id is missing")
	}
	return jobID, nil
}

// @Summary Get the job's assessment
// @Tags Assessments
// @Param jobId path string true "job ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Assessment}
// @Failure 404 {object} apimodels.Response
// @router /assessments/{jobId} [get]
func (c *assessmentApiController) get(ctx *fiber.Ctx) error {
	jobID, err := getJobID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.GetByJob(jobID)
	if err != nil {
		return c.SendError(ctx, err, "failed to fetch assessment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Create or replace the job's assessment
// @Tags Assessments
// @Param jobId path string true "job ID"
// @Param body body assessmentapimodels.AssessmentData true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Assessment}
// @router /assessments/{jobId} [put]
func (c *assessmentApiController) put(ctx *fiber.Ctx) error {
	jobID, err := getJobID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.AssessmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Save(jobID, payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to save assessment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Submit a candidate's answers
// @Tags Assessments
// @Param jobId path string true "job ID"
// @Param body body assessmentapimodels.SubmitRequest true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.AssessmentResponse}
// @router /assessments/{jobId}/submit [post]
func (c *assessmentApiController) submit(ctx *fiber.Ctx) error {
	jobID, err := getJobID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Submit(jobID, payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to submit assessment response")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Submitted responses for the job's assessment
// @Tags Assessments
// @Param jobId path string true "job ID"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.AssessmentResponse}
// @router /assessments/{jobId}/responses [get]
func (c *assessmentApiController) responses(ctx *fiber.Ctx) error {
	jobID, err := getJobID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := c.handler.ListResponses(jobID)
	if err != nil {
		return c.SendError(ctx, err, "failed to list responses")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
