package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"formapi/internal/form"
	"formapi/internal/http/middleware"
	"formapi/internal/pdf"
	"formapi/internal/storage"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Success   bool          `json:"success"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code              string   `json:"code"`
	Message           string   `json:"message"`
	MissingFields     []string `json:"missing_fields,omitempty"`
	UnsupportedFields []string `json:"unsupported_fields,omitempty"`
	Detail            string   `json:"detail,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_FAILED", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeEnvelope(c, status, errorEnvelope{Code: code, Message: message})
}

func writeEnvelope(c *fiber.Ctx, status int, env errorEnvelope) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     env,
	})
}

// errorWriter maps generation errors onto HTTP responses. In development,
// server error payloads carry the underlying error text as detail.
type errorWriter struct {
	log         *zap.Logger
	development bool
}

func (w errorWriter) generation(c *fiber.Ctx, err error) error {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return writeEnvelope(c, fiber.StatusBadRequest, errorEnvelope{
			Code:              "VALIDATION_FAILED",
			Message:           verr.Error(),
			MissingFields:     verr.Missing,
			UnsupportedFields: verr.Unsupported,
		})
	}

	env := errorEnvelope{Code: "INTERNAL_ERROR", Message: "Error interno del servidor"}
	if errors.Is(err, storage.ErrTemplateNotFound) || errors.Is(err, pdf.ErrTemplateParse) {
		env = errorEnvelope{Code: "TEMPLATE_UNAVAILABLE", Message: "Plantilla PDF no disponible"}
	}

	w.log.Error("pdf_generation_failed",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("path", c.Path()),
		zap.String("code", env.Code),
		zap.Error(err),
	)

	if w.development {
		env.Detail = err.Error()
	}
	return writeEnvelope(c, fiber.StatusInternalServerError, env)
}

// RateLimited is the limiter rejection handler.
func RateLimited(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "Demasiadas solicitudes desde esta IP")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(log *zap.Logger, development bool) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "Solicitud inválida")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "Recurso no encontrado")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "Método no permitido")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "Cuerpo de la solicitud demasiado grande")
		case fiber.StatusTooManyRequests:
			return RateLimited(c)
		}

		log.Error("unhandled_error",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		env := errorEnvelope{Code: "INTERNAL_ERROR", Message: "Error interno del servidor"}
		if development {
			env.Detail = err.Error()
		}
		return writeEnvelope(c, status, env)
	}
}
