package handler

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/remastershadhi/api/internal/model"
	"github.com/remastershadhi/api/internal/service"
	"github.com/remastershadhi/api/pkg/response"
)

type ExportHandler struct {
	service   *service.ExportService
	validator *validator.Validate
}

func NewExportHandler(svc *service.ExportService, v *validator.Validate) *ExportHandler {
	return &ExportHandler{
		service:   svc,
		validator: v,
	}
}

// Download handles POST /api/export
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	req, ok, err := h.parse(c)
	if !ok {
		return err
	}

	body := h.service.Artifact(req)
	return response.Attachment(c, model.ExportFilename, model.ExportContentType, body)
}

// Link handles POST /api/export/link
func (h *ExportHandler) Link(c *fiber.Ctx) error {
	req, ok, err := h.parse(c)
	if !ok {
		return err
	}

	result, err := h.service.CreateLink(c.Context(), req)
	if err != nil {
		log.Printf("Export link failed: %v", err)
		return response.ServiceError(c, response.MsgExportUnavailable)
	}

	return response.Created(c, result)
}

// parse reads and validates the export body. When ok is false the error
// response has already been written and err is the result of writing it.
func (h *ExportHandler) parse(c *fiber.Ctx) (req *model.ExportRequest, ok bool, err error) {
	req = &model.ExportRequest{}
	if err := c.BodyParser(req); err != nil {
		return nil, false, response.ValidationError(c, response.MsgInvalidRequestBody)
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, false, response.ValidationError(c, response.MsgLyricsRequired)
	}

	return req, true, nil
}
