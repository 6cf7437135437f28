package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/config"
	"github.com/address-microservice/internal/delivery/http/handler"
	"github.com/address-microservice/internal/delivery/http/middleware"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/utils"
)

// Handlers - обработчики HTTP API
type Handlers struct {
	Country     *handler.CountryHandler
	Format      *handler.FormatHandler
	Subdivision *handler.SubdivisionHandler
	Render      *handler.RenderHandler
	Zone        *handler.ZoneHandler
	Import      *handler.ImportHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Address Format Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/countries", s.handlers.Country.List)

	// Formats
	api.Get("/formats", s.handlers.Format.List)
	api.Get("/formats/:country", s.handlers.Format.Get)
	api.Put("/formats/:country", s.handlers.Format.Save)
	api.Delete("/formats/:country", s.handlers.Format.Delete)

	// Subdivisions
	api.Get("/subdivisions/:country", s.handlers.Subdivision.Children)
	api.Get("/subdivisions/:country/depth", s.handlers.Subdivision.Depth)
	api.Get("/subdivision/:id", s.handlers.Subdivision.Get)
	api.Put("/subdivision/:id", s.handlers.Subdivision.Save)
	api.Delete("/subdivision/:id", s.handlers.Subdivision.Delete)

	// Rendering and validation
	api.Post("/render", s.handlers.Render.Render)
	api.Post("/batch/render", s.handlers.Render.BatchRender)
	api.Post("/validate", s.handlers.Render.Validate)

	// Zones
	api.Get("/zones", s.handlers.Zone.List)
	api.Get("/zones/:id", s.handlers.Zone.Get)
	api.Put("/zones/:id", s.handlers.Zone.Save)
	api.Delete("/zones/:id", s.handlers.Zone.Delete)
	api.Post("/zones/:id/match", s.handlers.Zone.Match)

	if s.handlers.Import != nil {
		api.Post("/import", s.handlers.Import.Enqueue)
	}
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405, паника после recover) в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer.WithMessage(err.Error())

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			appErr = errors.New(httpErrorCode(code), e.Message, code)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	default:
		if status < fiber.StatusInternalServerError {
			return "BAD_REQUEST"
		}
		return "INTERNAL_SERVER_ERROR"
	}
}
