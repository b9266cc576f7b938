package middleware

import (
	"errors"
	"log"

	"job-khojo/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts every downstream error (and panic) into the flat
// {"status":"error","message":...} envelope. Server-side messages keep the
// underlying cause text: the frontends surface it to operators directly.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s status=%d err=%v", c.Method(), c.OriginalURL(), status, err)
		}
		return response.Error(c, status, msg)
	}
}

func normalizeError(err error) (int, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		msg := appErr.Message
		if msg == "" && appErr.Cause != nil {
			msg = appErr.Cause.Error()
		}
		return status, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, err.Error()
}
