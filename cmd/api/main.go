package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"formapi/docs"
	"formapi/internal/config"
	"formapi/internal/database"
	"formapi/internal/database/migration"
	"formapi/internal/form"
	handlers "formapi/internal/http/handler"
	"formapi/internal/http/middleware"
	"formapi/internal/logging"
	"formapi/internal/otel"
	"formapi/internal/pdf"
	"formapi/internal/repository"
	"formapi/internal/repository/postgres"
	"formapi/internal/service"
	"formapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Certificate Request Form API
// @version 1.0.0
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc, locErr := cfg.Location()

	logger, err := logging.New(cfg.LogLevel, loc)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if locErr != nil {
		logger.Warn("timezone_fallback", zap.String("timezone", "UTC"), zap.Error(locErr))
	}

	if _, err := maxprocs.Set(maxprocs.Logger(logger.Sugar().Infof)); err != nil {
		logger.Warn("maxprocs_failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	store, err := newTemplateStore(cfg)
	if err != nil {
		return fmt.Errorf("initialize template store: %w", err)
	}

	audit, closeDB, err := newAudit(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	formMetrics, err := service.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register form metrics: %w", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	svc := service.NewFormService(store, pdf.NewRenderer(), service.Options{
		Audit:    audit,
		Place:    cfg.Form.PlaceName,
		Location: loc,
		Logger:   logger,
		Metrics:  formMetrics,
	})

	app := fiber.New(fiber.Config{
		AppName:               "formapi",
		ErrorHandler:          handlers.ErrorHandler(logger, cfg.IsDevelopment()),
		BodyLimit:             cfg.HTTP.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.SecurityHeaders(cfg.APIURL))
	app.Use(middleware.CORS(cfg.HTTP.AllowedOrigins))
	app.Use(middleware.RateLimit(cfg.HTTP.RateLimitMax, cfg.HTTP.RateLimitWindow, handlers.RateLimited))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, svc, handlers.Options{
		Environment: cfg.Environment,
		Development: cfg.IsDevelopment(),
		Logger:      logger,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started",
			zap.String("addr", addr),
			zap.String("environment", cfg.Environment),
			zap.Strings("allowed_origins", cfg.HTTP.AllowedOrigins),
			zap.String("api_url", cfg.APIURL),
			zap.String("template_source", cfg.Templates.Source),
			zap.Bool("audit_enabled", audit != nil),
		)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func newTemplateStore(cfg *config.AppConfig) (storage.TemplateStore, error) {
	switch cfg.Templates.Source {
	case "local":
		return storage.NewLocal(cfg.Templates.Dir), nil
	case "minio":
		return storage.NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown TEMPLATE_SOURCE %q", cfg.Templates.Source)
	}
}

// newAudit connects the optional generation audit log. A nil repository means
// auditing is disabled.
func newAudit(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.GenerationRepository, func(), error) {
	if !cfg.Database.Enabled() {
		return nil, func() {}, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closeDB := func() { _ = db.Close() }

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		closeDB()
		return nil, nil, err
	}

	repo := postgres.NewGenerationPostgres(db)
	logAuditSummary(ctx, repo, logger)
	return repo, closeDB, nil
}

func logAuditSummary(ctx context.Context, repo repository.GenerationRepository, logger *zap.Logger) {
	for _, t := range form.Types() {
		counts, err := repo.CountByForm(ctx, t)
		if err != nil {
			logger.Warn("audit_summary_failed", zap.String("form_type", string(t)), zap.Error(err))
			continue
		}
		fields := []zap.Field{zap.String("form_type", string(t))}
		for status, n := range counts {
			fields = append(fields, zap.Int(string(status), n))
		}
		logger.Info("audit_summary", fields...)
	}
}

