package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
	OpenAIKey     string
	OpenAIModel   string
	UploadDir     string
	PublicBaseURL string
	ClientBaseURL string
	CORSOrigins   []string
}

// LoadEnv loads environment variables from the .env file, if there is one.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
}

func LoadConfig() *Config {
	LoadEnv()

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "homeplate"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		ClientBaseURL: getEnv("CLIENT_BASE_URL", "http://localhost:3000"),
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", cfg.Port)
		cfg.Port = "5000"
	}

	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port), "/")

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, using an insecure development secret. PLEASE SET JWT_SECRET IN PRODUCTION!")
		cfg.JWTSecret = "homeplate-dev-secret"
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil || ttl <= 0 {
		slog.Error("Invalid TOKEN_TTL, falling back to 7 days", "TOKEN_TTL", os.Getenv("TOKEN_TTL"))
		ttl = 7 * 24 * time.Hour
	}
	cfg.TokenTTL = ttl

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil || cost < 4 || cost > 31 {
		slog.Error("Invalid BCRYPT_COST, falling back to 10", "BCRYPT_COST", os.Getenv("BCRYPT_COST"))
		cost = 10
	}
	cfg.BcryptCost = cost

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
