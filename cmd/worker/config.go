package main

import (
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/config"
)

// loadConfig: worker dùng chung config với api (Redis, SMTP, Worker)
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load")
	}

	log.Info().
		Str("redis", cfg.Redis.Host).
		Str("smtp", cfg.SMTP.Host).
		Int("concurrency", cfg.Worker.Concurrency).
		Msg("[Config] Loaded")

	return cfg
}
