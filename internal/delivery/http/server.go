package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/config"
	"github.com/ichidan-dokusho/place-api/internal/delivery/http/handler"
	"github.com/ichidan-dokusho/place-api/internal/delivery/http/middleware"
	"github.com/ichidan-dokusho/place-api/internal/domain"
)

type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	healthHandler  *handler.HealthHandler
	regionHandler  *handler.RegionHandler
	stationHandler *handler.StationHandler
	placeHandler   *handler.PlaceHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthHandler *handler.HealthHandler,
	regionHandler *handler.RegionHandler,
	stationHandler *handler.StationHandler,
	placeHandler *handler.PlaceHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "ichidan-dokusho-place API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: errorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		healthHandler:  healthHandler,
		regionHandler:  regionHandler,
		stationHandler: stationHandler,
		placeHandler:   placeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/", s.healthHandler.Banner)
	s.app.Get("/health", s.healthHandler.Health)
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Regional hierarchy drill-down
	api.Get("/regions", s.regionHandler.ListRegions)
	api.Get("/prefectures", s.regionHandler.ListPrefectures)

	// Stations
	api.Get("/stations", s.stationHandler.ListNames)
	api.Get("/stations/all", s.stationHandler.ListAll)
	api.Post("/stations", s.stationHandler.Create)
	api.Put("/stations/:id", s.stationHandler.Update)
	api.Delete("/stations/:id", s.stationHandler.Delete)

	// Places: same contract under /cafes, /bookstores and /bars
	for _, kind := range domain.PlaceKinds() {
		group := api.Group("/" + string(kind))
		group.Get("/", s.placeHandler.List(kind))
		group.Get("/all", s.placeHandler.ListAll(kind))
		group.Post("/", s.placeHandler.Create(kind))
		group.Put("/:id", s.placeHandler.Update(kind))
		group.Delete("/:id", s.placeHandler.Delete(kind))
	}
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber instance for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "サーバーエラーが発生しました"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}
