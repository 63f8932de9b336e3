package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/remastershadhi/api/internal/metrics"
	"github.com/remastershadhi/api/internal/model"
	"github.com/remastershadhi/api/internal/service"
	"github.com/remastershadhi/api/pkg/response"
)

type ProxyHandler struct {
	service   *service.LyricsService
	validator *validator.Validate
	apiKey    func() string
}

// NewProxyHandler creates the proxy handler. apiKey is called on every request.
func NewProxyHandler(svc *service.LyricsService, v *validator.Validate, apiKey func() string) *ProxyHandler {
	return &ProxyHandler{
		service:   svc,
		validator: v,
		apiKey:    apiKey,
	}
}

// Handle serves every method on the proxy route; only POST is accepted.
func (h *ProxyHandler) Handle(c *fiber.Ctx) error {
	action := "unknown"
	defer func() {
		metrics.ProxyRequestsTotal.WithLabelValues(action, strconv.Itoa(c.Response().StatusCode())).Inc()
	}()

	if c.Method() != fiber.MethodPost {
		return response.MethodNotAllowed(c)
	}

	apiKey := h.apiKey()
	if apiKey == "" {
		log.Printf("Proxy request rejected: GEMINI_API_KEY is not set")
		return response.ConfigError(c)
	}

	var req model.ProxyRequest
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return response.ValidationError(c, response.MsgInvalidAction)
		}
	}

	// A lyrics request ignores any file it carries.
	if req.Action == model.ActionGenerateLyrics {
		req.File = nil
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, proxyValidationMessage(err))
	}
	action = string(req.Action)

	result, err := h.service.Dispatch(c.Context(), apiKey, &req)
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		if errors.Is(err, service.ErrAPIKeyMissing) {
			return response.ConfigError(c)
		}
		return response.UpstreamError(c)
	}

	return response.Result(c, result)
}

// proxyValidationMessage maps validator errors to the fixed client messages.
// An action problem outranks everything else.
func proxyValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return response.MsgInvalidAction
	}

	msg := ""
	for _, e := range validationErrors {
		switch e.StructField() {
		case "Action":
			return response.MsgInvalidAction
		case "Prompt":
			msg = response.MsgPromptRequired
		case "File", "Data", "MIMEType":
			msg = response.MsgFileDataRequired
		}
	}
	if msg == "" {
		return response.MsgInvalidAction
	}
	return msg
}
