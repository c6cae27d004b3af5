package server

import (
	"maverik-copilot-be/internal/bootstrap"
	"maverik-copilot-be/internal/config"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/metrics"
	"maverik-copilot-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	log := container.Logger

	app := fiber.New(fiber.Config{
		AppName:               config.ServiceName,
		BodyLimit:             1 * 1024 * 1024,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          serverutils.FiberErrorHandler(log),
		Immutable:             true,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, X-Request-ID",
	}))

	// OpenTelemetry tracing middleware (no-op unless a tracer provider is installed)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.RequestLogger(log))
	app.Use(metrics.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(log))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info(logger.App, "Server is running", map[string]interface{}{
		"port":        s.cfg.App.Port,
		"environment": s.cfg.App.Environment,
		"storage":     s.cfg.App.Storage,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	c.HealthController.RegisterRoutes(app)
	c.UserController.RegisterRoutes(app)
	c.CopilotController.RegisterRoutes(app, c.AuthMiddleware)
	c.CatalogController.RegisterRoutes(app)

	if c.DebugController != nil {
		c.DebugController.RegisterRoutes(app, c.AuthMiddleware)
	}
}
