package response

import "github.com/gofiber/fiber/v2"

// Fixed client-facing messages. Upstream and configuration details are logged, never returned.
const (
	MsgMethodNotAllowed   = "Method Not Allowed"
	MsgAPIKeyMissing      = "API key is not configured."
	MsgInvalidAction      = "Invalid action specified."
	MsgPromptRequired     = "Prompt is required."
	MsgFileDataRequired   = "File data for image description is required."
	MsgUpstreamFailure    = "An internal error occurred while contacting the Gemini API."
	MsgInternalError      = "Internal Server Error"
	MsgLyricsRequired     = "Lyrics are required."
	MsgExportUnavailable  = "Could not create the export link."
	MsgInvalidRequestBody = "Invalid request body."
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResultResponse struct {
	Result string `json:"result"`
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ConfigError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, MsgAPIKeyMissing)
}

func UpstreamError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, MsgUpstreamFailure)
}

func ServiceError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// MethodNotAllowed replies with a plain text body, not the JSON envelope.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).SendString(MsgMethodNotAllowed)
}

func Result(c *fiber.Ctx, text string) error {
	return c.JSON(ResultResponse{Result: text})
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Attachment sends body as a file download with the given name and content type.
func Attachment(c *fiber.Ctx, filename, contentType string, body []byte) error {
	// Attachment guesses a type from the extension; ours wins.
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}
