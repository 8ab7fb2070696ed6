package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chup1x/carprice/internal/config"
	"github.com/chup1x/carprice/internal/logger"
	"github.com/chup1x/carprice/internal/transport/v1/rest"
)

func MustRunApp() {
	config, err := config.GetConfig()
	if err != nil {
		fatal("to get config", err)
	}

	log, err := logger.New(config.Log.Level)
	if err != nil {
		fatal("to build logger", err)
	}

	server, err := rest.New(config, log)
	if err != nil {
		fatal("to build web server", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("prediction service configured", "url", config.PredictionService.URL)
	if err := server.Start(ctx); err != nil {
		fatal("start web server", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
