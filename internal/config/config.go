package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App        AppConfig
	Redis      RedisConfig
	JWT        JWTConfig
	SMTP       SMTPConfig
	Payment    PaymentConfig
	MinIO      MinIOConfig
	Commission CommissionConfig
	Worker     WorkerConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	AllowedOrigins []string
	AutoMigrate    bool
	// NotifyMode: "queue" (asynq, default) hoặc "sync" (gửi email trực tiếp)
	NotifyMode string
	// PublicURL dùng để dựng link trong email
	PublicURL string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// =====================================================
// PAYMENT CONFIGURATION
// =====================================================

type PaymentConfig struct {
	Provider           string // stripe, mock
	APIKey             string
	APIURL             string
	WebhookSecret      string
	WebhookTolerance   time.Duration
	Currency           string
	SuccessURL         string
	CancelURL          string
	RefreshURL         string
	PlatformFeePercent int
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

type CommissionConfig struct {
	// StrictTransitions bật guard cho PUT /commissions/:id
	StrictTransitions bool
	CacheTTL          time.Duration
}

type WorkerConfig struct {
	Concurrency int
	HealthPort  string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "ArtistHub API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			AutoMigrate:    getEnvBool("DB_AUTO_MIGRATE", false),
			NotifyMode:     strings.ToLower(getEnv("NOTIFY_MODE", "queue")),
			PublicURL:      getEnv("APP_PUBLIC_URL", "http://localhost:3000"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 1025),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@artisthub.local"),
		},
		Payment: PaymentConfig{
			Provider:           strings.ToLower(getEnv("PAYMENT_PROVIDER", "mock")),
			APIKey:             getEnv("PAYMENT_API_KEY", ""),
			APIURL:             getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
			WebhookSecret:      getEnv("PAYMENT_WEBHOOK_SECRET", ""),
			WebhookTolerance:   getEnvDuration("PAYMENT_WEBHOOK_TOLERANCE", 5*time.Minute),
			Currency:           strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
			SuccessURL:         getEnv("PAYMENT_SUCCESS_URL", "http://localhost:3000/commissions/payment/success"),
			CancelURL:          getEnv("PAYMENT_CANCEL_URL", "http://localhost:3000/commissions/payment/cancel"),
			RefreshURL:         getEnv("PAYMENT_REFRESH_URL", "http://localhost:3000/settings/payments"),
			PlatformFeePercent: getEnvInt("PAYMENT_PLATFORM_FEE_PERCENT", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "artisthub"),
			PublicURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Commission: CommissionConfig{
			StrictTransitions: getEnvBool("COMMISSION_STRICT_TRANSITIONS", false),
			CacheTTL:          getEnvDuration("COMMISSION_CACHE_TTL", 5*time.Minute),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 10),
			HealthPort:  getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.App.NotifyMode {
	case "queue", "sync":
	default:
		return fmt.Errorf("NOTIFY_MODE must be queue or sync, got %q", c.App.NotifyMode)
	}

	switch c.Payment.Provider {
	case "stripe", "mock":
	default:
		return fmt.Errorf("PAYMENT_PROVIDER must be stripe or mock, got %q", c.Payment.Provider)
	}

	if c.Payment.PlatformFeePercent < 0 || c.Payment.PlatformFeePercent > 100 {
		return fmt.Errorf("PAYMENT_PLATFORM_FEE_PERCENT must be between 0 and 100")
	}

	if c.Payment.Provider == "stripe" && c.Payment.APIKey == "" {
		return fmt.Errorf("PAYMENT_API_KEY must be set for the stripe provider")
	}

	// Production environment phải có JWT secret và webhook secret
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Payment.WebhookSecret == "" {
			return fmt.Errorf("PAYMENT_WEBHOOK_SECRET must be set in production")
		}
		// mock gateway không ký webhook
		if c.Payment.Provider == "mock" {
			return fmt.Errorf("PAYMENT_PROVIDER=mock is not allowed in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
