package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds every tunable the server reads from the environment.
// All keys are optional; missing values fall back to development defaults.
type Config struct {
	ServerPort string
	AppEnv     string
	AppDebug   bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTSecret     string
	JWTExpiration time.Duration

	AllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RedisAddr         string

	StripeSecretKey     string
	StripePublicKey     string
	StripeWebhookSecret string
	BkashAppKey         string

	ExportDir string
	LogFile   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "development"),
		AppDebug:   getBool("APP_DEBUG", false),

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "formbuilder"),
		SQLitePath: getEnv("SQLITE_PATH", "formbuilder.db"),

		JWTSecret:     getEnv("JWT_SECRET", "fallback_secret"),
		JWTExpiration: ParseExpiration(getEnv("JWT_EXPIRATION", "7d")),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", 1000),
		RateLimitWindow:   time.Duration(getInt("RATE_LIMIT_WINDOW", 900)) * time.Second,
		RedisAddr:         getEnv("REDIS_ADDR", ""),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripePublicKey:     getEnv("STRIPE_PUBLIC_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		BkashAppKey:         getEnv("BKASH_APP_KEY", ""),

		ExportDir: getEnv("EXPORT_DIR", "exports"),
		LogFile:   getEnv("LOG_FILE", ""),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "receipts"),
		MinioUseSSL:    getBool("MINIO_USE_SSL", false),
	}
	return cfg
}

// IsProduction reports whether the server runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ShowDebugDetail gates internal error detail in responses.
func (c *Config) ShowDebugDetail() bool {
	return c.AppDebug && !c.IsProduction()
}

// ParseExpiration accepts absolute seconds ("3600") or a suffixed
// duration like "7d", "24h", "60m", "30s". Unparseable input falls
// back to seven days.
func ParseExpiration(raw string) time.Duration {
	const week = 7 * 24 * time.Hour

	if raw == "" {
		return week
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}

	unit := raw[len(raw)-1]
	value, err := strconv.Atoi(raw[:len(raw)-1])
	if err != nil {
		return week
	}
	switch unit {
	case 'd':
		return time.Duration(value) * 24 * time.Hour
	case 'h':
		return time.Duration(value) * time.Hour
	case 'm':
		return time.Duration(value) * time.Minute
	case 's':
		return time.Duration(value) * time.Second
	default:
		return week
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
