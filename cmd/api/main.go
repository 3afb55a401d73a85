package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/config"
	"artisthub-backend/internal/infrastructure/database"
	"artisthub-backend/pkg/logger"
)

func main() {
	// .env chỉ dùng ở local, production lấy từ system env
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	env := getEnv("APP_ENV", "development")
	logger.Init(env)
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// `api migrate`: chỉ chạy migration rồi thoát
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrations(); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
		return
	}

	if getEnv("DB_AUTO_MIGRATE", "false") == "true" {
		if err := runMigrations(); err != nil {
			log.Fatal().Err(err).Msg("Auto migration failed")
		}
	}

	Serve()
}

func runMigrations() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}
	return database.RunMigrations(dbConfig)
}

// getEnv lấy environment variable với fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
