package server

import (
	"fmt"

	"freight-quoter/internal/core/config"
	"freight-quoter/internal/core/logger"
	hubhandler "freight-quoter/internal/features/hubs/handler"
	quotehandler "freight-quoter/internal/features/quotes/handler"
	tariffhandler "freight-quoter/internal/features/tariffs/handler"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "freight-quoter/docs/swagger"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// Handlers groups the feature handlers mounted by RegisterRoutes.
type Handlers struct {
	Quotes  *quotehandler.QuoteHandler
	Hubs    *hubhandler.HubsHandler
	Catalog *tariffhandler.CatalogHandler
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               logger.ServiceName,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// RegisterRoutes mounts the feature endpoints.
func (s *Server) RegisterRoutes(h Handlers) {
	s.App.Post("/quotes", h.Quotes.CreateQuote)
	s.App.Get("/quotes/:id", h.Quotes.GetQuote)

	s.App.Get("/hubs", h.Hubs.ListHubs)
	s.App.Get("/hubs/resolve", h.Hubs.ResolveHub)

	s.App.Get("/catalog", h.Catalog.GetCatalog)
	s.App.Post("/catalog/reload", h.Catalog.ReloadCatalog)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
