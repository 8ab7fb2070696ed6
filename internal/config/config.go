package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Server            ServerConfig
	PredictionService PredictionServiceConfig
	Session           SessionConfig
	Log               LogConfig
}

type ServerConfig struct {
	Port        string        `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
}

type PredictionServiceConfig struct {
	URL     string        `env:"PREDICTION_API_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"PREDICTION_TIMEOUT" envDefault:"30s"`
}

type SessionConfig struct {
	Cookie   string        `env:"SESSION_COOKIE" envDefault:"carprice_session"`
	TTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	Capacity int           `env:"SESSION_CAPACITY" envDefault:"4096"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

func GetConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse .env file: %w", err)
	}

	return config, nil
}
