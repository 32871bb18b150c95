package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"youthcentre_backend/internals/logger"
)

type Config struct {
	Port        string
	Environment string
	JWTSecret   string
	CORSOrigins []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	AdminScopeCacheTTL time.Duration
	ReconcileCron      string
	RunSeeds           bool
	SeedsDir           string

	LogDebug  bool
	LogToFile bool
	LogsDir   string
}

// JWTSecret stays package-level: the auth middleware reads it per request.
var JWTSecret string

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logger.Log.Info("no .env file found, using system environment")
		} else {
			logger.Log.Info(".env file loaded")
		}
	} else {
		logger.Log.Info("running on Railway, using system environment")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ADMIN_SCOPE_CACHE_TTL", "5m")
	v.SetDefault("PARTICIPANTS_RECONCILE_CRON", "@every 6h")
	v.SetDefault("RUN_SEEDS", false)
	v.SetDefault("SEEDS_DIR", "internals/seeds/data")
	v.SetDefault("LOG_DEBUG", false)
	v.SetDefault("LOG_TO_FILE", false)
	v.SetDefault("LOGS_DIR", "logs")
}

// Load reads the configuration from the environment (after LoadEnv) and
// validates the critical values.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	ttl, err := time.ParseDuration(v.GetString("ADMIN_SCOPE_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_SCOPE_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENVIRONMENT"),
		JWTSecret:   strings.TrimSpace(v.GetString("JWT_SECRET")),
		CORSOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),

		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		RedisHost:     strings.TrimSpace(v.GetString("REDIS_HOST")),
		RedisPort:     v.GetString("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		AdminScopeCacheTTL: ttl,
		ReconcileCron:      v.GetString("PARTICIPANTS_RECONCILE_CRON"),
		RunSeeds:           v.GetBool("RUN_SEEDS"),
		SeedsDir:           v.GetString("SEEDS_DIR"),

		LogDebug:  v.GetBool("LOG_DEBUG"),
		LogToFile: v.GetBool("LOG_TO_FILE"),
		LogsDir:   v.GetString("LOGS_DIR"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	JWTSecret = cfg.JWTSecret
	return cfg, nil
}

// DSN builds the postgres connection string, with a statement timeout aligned
// to the request timeout.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=youthcentre&options=-c statement_timeout=3000",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) RedisEnabled() bool { return c.RedisHost != "" }

func (c *Config) RedisAddr() string { return c.RedisHost + ":" + c.RedisPort }

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
