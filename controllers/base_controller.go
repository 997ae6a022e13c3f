package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talentflow-backend/lib/apperr"
	apimodels "talentflow-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body could not be parsed")
		return errors.New("could not read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is missing")
	}
	return id, nil
}

// SendError converts err into the wire envelope, mapping the error kind onto
// the status code. Server-class errors are logged with the given message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error, msg string) error {
	status := apperr.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).Error(msg)
		return ctx.Status(status).JSON(apimodels.NewError(msg))
	}
	log.WithError(err).Warn(msg)
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}
