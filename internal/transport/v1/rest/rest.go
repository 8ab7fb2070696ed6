package rest

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/chup1x/carprice/internal/config"
	predictcntrl "github.com/chup1x/carprice/internal/transport/v1/rest/predict"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

type Server struct {
	app    *fiber.App
	config *config.Config
	logger *slog.Logger
}

func New(config *config.Config, log *slog.Logger) (*Server, error) {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, fmt.Errorf("open views: %w", err)
	}

	app := fiber.New(fiber.Config{
		Views:                 html.NewFileSystem(http.FS(views), ".html"),
		ReadTimeout:           config.Server.ReadTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	api := app.Group("/api/v1")

	predictcntrl.RegisterPredictRoutes(app, api, config, log)

	return &Server{app: app, config: config, logger: log}, nil
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error("shutdown web server", "err", err)
		}
	}()

	s.logger.Info("web server listening", "port", s.config.Server.Port)
	if err := s.app.Listen(fmt.Sprintf(":%s", s.config.Server.Port)); err != nil {
		return fmt.Errorf("server start: %w", err)
	}

	return nil
}
