package response

import "github.com/gofiber/fiber/v3"

// Every endpoint answers with a flat JSON envelope carrying a "status" of
// "success" or "error", matching what the form frontends already consume.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageNotFound            = "not found"
	MessageInternalServerError = "internal server error"
)

// Success writes {"status":"success", ...fields}.
func Success(c fiber.Ctx, httpStatus int, fields fiber.Map) error {
	body := fiber.Map{"status": StatusSuccess}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(httpStatus).JSON(body)
}

// Error writes {"status":"error","message":...}.
func Error(c fiber.Ctx, httpStatus int, message string) error {
	if message == "" {
		message = defaultMessageForStatus(httpStatus)
	}
	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  StatusError,
		"message": message,
	})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return StatusError
	}
}
