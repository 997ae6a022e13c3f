package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"talentflow-backend/controllers"
	candidatehandler "talentflow-backend/lib/candidate"
	pdfexport "talentflow-backend/lib/export/pdf"
	xlsexport "talentflow-backend/lib/export/xls"
	jobhandler "talentflow-backend/lib/job"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
	handler candidatehandler.Provider
	jobs    jobhandler.Provider
}

func InitCandidateApiRouters(app fiber.Router, handler candidatehandler.Provider, jobs jobhandler.Provider) {
	controller := candidateApiController{handler: handler, jobs: jobs}
	app.Route("/candidates", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("/export", controller.exportXlsx)
		router.Route("/:id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("/timeline", controller.timeline)
			idRoute.Post("/notes", controller.addNote)
			idRoute.Get("/profile.pdf", controller.profilePdf)
		})
	})
}

// @Summary List candidates
// @Tags Candidates
// @Success 200 {object} apimodels.ListResponse{data=[]dbmodels.Candidate}
// @router /candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var filter candidateapimodels.CandidateFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read list filters"))
	}
	list, total, err := c.handler.List(filter)
	if err != nil {
		return c.SendError(ctx, err, "failed to list candidates")
	}
	page, pageSize := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, total, page, pageSize))
}

// @Summary Create candidate
// @Tags Candidates
// @Param body body candidateapimodels.CandidateData true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Candidate}
// @router /candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to create candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Get candidate by id
// @Tags Candidates
// @Param id path string true "rec ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Candidate}
// @router /candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err, "failed to fetch candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update candidate (partial); a stage change appends a timeline event
// @Tags Candidates
// @Param id path string true "rec ID"
// @Param body body candidateapimodels.CandidatePatch true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Candidate}
// @router /candidates/{id} [patch]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidatePatch
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to update candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Delete candidate (hard)
// @Tags Candidates
// @Param id path string true "rec ID"
// @Success 200 {object} apimodels.Response
// @router /candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "failed to delete candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate history
// @Tags Candidates
// @Param id path string true "rec ID"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.TimelineEvent}
// @router /candidates/{id}/timeline [get]
func (c *candidateApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	events, err := c.handler.Timeline(id)
	if err != nil {
		return c.SendError(ctx, err, "failed to fetch candidate timeline")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(events))
}

// @Summary Attach a note (append-only)
// @Tags Candidates
// @Param id path string true "rec ID"
// @Param body body candidateapimodels.NoteData true "request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Candidate}
// @router /candidates/{id}/notes [post]
func (c *candidateApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.NoteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.AddNote(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to add note")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Export the filtered candidate list as an xlsx workbook
// @Tags Candidates
// @Success 200 {file} binary
// @router /candidates/export [get]
func (c *candidateApiController) exportXlsx(ctx *fiber.Ctx) error {
	var filter candidateapimodels.CandidateFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("could not read list filters"))
	}
	list, err := c.handler.ListAll(filter)
	if err != nil {
		return c.SendError(ctx, err, "failed to list candidates for export")
	}
	jobTitles := map[string]string{}
	for _, candidate := range list {
		if _, ok := jobTitles[candidate.JobID]; ok {
			continue
		}
		if job, err := c.jobs.GetByID(candidate.JobID); err == nil {
			jobTitles[candidate.JobID] = job.Title
		}
	}
	content, err := xlsexport.CandidateList(list, jobTitles)
	if err != nil {
		return c.SendError(ctx, err, "failed to build export file")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary Candidate profile with timeline as PDF
// @Tags Candidates
// @Param id path string true "rec ID"
// @Success 200 {file} binary
// @router /candidates/{id}/profile.pdf [get]
func (c *candidateApiController) profilePdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.handler.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err, "failed to fetch candidate")
	}
	jobTitle := ""
	if job, err := c.jobs.GetByID(rec.JobID); err == nil {
		jobTitle = job.Title
	}
	content, err := pdfexport.CandidateProfile(*rec, jobTitle)
	if err != nil {
		return c.SendError(ctx, err, "failed to build profile pdf")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="candidate-%s.pdf"`, rec.ID))
	return ctx.Status(fiber.StatusOK).Send(content)
}
