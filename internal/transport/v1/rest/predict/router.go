package predictcntrl

import (
	"log/slog"
	"time"

	"github.com/chup1x/carprice/internal/catalog"
	"github.com/chup1x/carprice/internal/config"
	"github.com/chup1x/carprice/internal/services/prediction"
	"github.com/chup1x/carprice/internal/session"
	"github.com/chup1x/carprice/internal/validation"
	"github.com/gofiber/fiber/v2"
)

func RegisterPredictRoutes(ui, api fiber.Router, cfg *config.Config, logger *slog.Logger) {
	client := prediction.NewClient(cfg.PredictionService.URL, cfg.PredictionService.Timeout, logger)
	sessions := session.NewStore(cfg.Session.Capacity, cfg.Session.TTL, client, logger)
	cat := catalog.Default()

	predictCntrl := NewPredictController(
		client,
		sessions,
		cat,
		validation.New(cat, time.Now),
		cfg.Session.Cookie,
		cfg.Session.TTL,
		logger,
	)

	ui.Get("/", predictCntrl.pageHandler)
	ui.Post("/predict", predictCntrl.submitHandler)
	ui.Post("/reset", predictCntrl.resetHandler)
	ui.Post("/result/reset", predictCntrl.resultResetHandler)

	api.Post("/predict", predictCntrl.apiPredictHandler)
	api.Get("/health", predictCntrl.healthHandler)
}
