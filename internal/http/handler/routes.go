package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"formapi/internal/http/middleware"
	"formapi/internal/model"
	"formapi/internal/service"
)

const (
	APIVersion = "1.0.0"

	PathGravamen = "/generar-pdf"
	PathBusqueda = "/generar-pdf-busqueda"

	readyTimeout = 2 * time.Second
)

// Options configures the HTTP handlers.
type Options struct {
	Environment string
	// Development adds error details to server error payloads.
	Development bool
	Logger      *zap.Logger
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.FormService, opts Options) {
	opts = opts.withDefaults()

	app.Post(PathGravamen, GenerateForm(svc, model.FormGravamen, opts))
	app.Post(PathBusqueda, GenerateForm(svc, model.FormBusqueda, opts))
	app.Get("/health", HealthCheck(svc, opts))
	app.Get("/healthz", Liveness())
}

// GenerateForm fills the template of formType with the JSON body and returns the PDF
// as an attachment.
//
// @Summary Generate a filled certificate request
// @Accept json
// @Produce application/pdf
// @Param body body map[string]string true "Form fields"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /generar-pdf [post]
// @Router /generar-pdf-busqueda [post]
func GenerateForm(svc service.FormService, formType model.FormType, opts Options) fiber.Handler {
	opts = opts.withDefaults()
	errs := errorWriter{log: opts.Logger, development: opts.Development}

	return func(c *fiber.Ctx) error {
		sub := model.Submission{}
		if body := c.Body(); len(body) > 0 {
			if err := json.Unmarshal(body, &sub); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "El cuerpo debe ser un objeto JSON válido")
			}
		}

		ctx := service.WithRequestID(c.UserContext(), middleware.RequestIDFrom(c))
		doc, err := svc.Generate(ctx, formType, sub)
		if err != nil {
			return errs.generation(c, err)
		}

		c.Set(fiber.HeaderContentType, doc.ContentType)
		c.Set(fiber.HeaderContentDisposition, "attachment; filename="+doc.Filename)
		return c.Status(fiber.StatusOK).Send(doc.Content)
	}
}

type healthResponse struct {
	Status      string            `json:"status"`
	APIVersion  string            `json:"apiVersion"`
	Environment string            `json:"environment"`
	Timestamp   string            `json:"timestamp"`
	Endpoints   map[string]string `json:"endpoints"`
}

// HealthCheck reports service metadata, or 503 when a dependency is unreachable.
//
// @Summary Service health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(svc service.FormService, opts Options) fiber.Handler {
	opts = opts.withDefaults()

	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
		defer cancel()
		if err := svc.Ready(ctx); err != nil {
			opts.Logger.Warn("readiness_failed",
				zap.String("request_id", middleware.RequestIDFrom(c)),
				zap.Error(err),
			)
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}

		return c.Status(fiber.StatusOK).JSON(healthResponse{
			Status:      "OK",
			APIVersion:  APIVersion,
			Environment: opts.Environment,
			Timestamp:   opts.Now().UTC().Format(time.RFC3339),
			Endpoints: map[string]string{
				"generarGravamen": PathGravamen,
				"generarBusqueda": PathBusqueda,
			},
		})
	}
}

// Liveness is a dependency-free liveness check.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
