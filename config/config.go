package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/logger"
	"github.com/joho/godotenv"

	"gacha-backend/gacha"
	"gacha-backend/models"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port            string
	DatabaseURL     string
	DBPoolSize      int
	DBConnMaxIdle   time.Duration
	RedisAddr       string
	CatalogCacheTTL time.Duration
	JSONDataPath    string
	WeightsFile     string
	PoolType        int
	MaxPull         int
	TelemetrySecret string
	LogVerbose      bool
}

// Load reads a .env file when not running on Render, then the environment.
func Load() (Config, error) {
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			logger.Info("No .env file found, continuing with system environment variables")
		}
	}

	cfg := Config{
		Port:            envString("PORT", "5000"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JSONDataPath:    envString("JSON_DATA_PATH", "/app/json_data"),
		WeightsFile:     strings.TrimSpace(os.Getenv("GACHA_WEIGHTS_FILE")),
		TelemetrySecret: os.Getenv("TELEMETRY_JWT_SECRET"),
	}

	var err error
	if cfg.DBPoolSize, err = envInt("DB_POOL_SIZE", 5); err != nil {
		return Config{}, err
	}
	if cfg.DBPoolSize <= 0 {
		return Config{}, fmt.Errorf("DB_POOL_SIZE must be greater than 0")
	}
	if cfg.DBConnMaxIdle, err = envDuration("DB_CONN_MAX_IDLE", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CatalogCacheTTL, err = envDuration("CATALOG_CACHE_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PoolType, err = envInt("GACHA_POOL_TYPE", models.StandardPoolType); err != nil {
		return Config{}, err
	}
	if cfg.MaxPull, err = envInt("GACHA_MAX_PULL", gacha.DefaultMaxPull); err != nil {
		return Config{}, err
	}
	if cfg.MaxPull <= 0 {
		return Config{}, fmt.Errorf("GACHA_MAX_PULL must be greater than 0")
	}
	if cfg.LogVerbose, err = envBool("LOG_VERBOSE", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return parsed, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return parsed, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return parsed, nil
}
