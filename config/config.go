package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type Config struct {
	Port    string
	GinMode string
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Rate    RateConfig
	Orders  OrderConfig
}

type DBConfig struct {
	Driver          string // sqlite, mysql or postgres
	URL             string
	MaxRetries      int
	RetryInterval   time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string // gorm logger: silent, error, warn, info
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// OrderConfig holds the two product switches for order handling. Both default
// to the lenient behavior.
type OrderConfig struct {
	// RejectInvalidLines fails the whole order when any line references a
	// missing or unavailable menu item, instead of dropping that line.
	RejectInvalidLines bool
	// StrictTransitions checks status updates against the order lifecycle
	// graph instead of accepting any allow-listed status.
	StrictTransitions bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	return &Config{
		Port:    getEnv("PORT", "8000"),
		GinMode: getEnv("GIN_MODE", "debug"),
		DB: DBConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			URL:             getEnv("DATABASE_URL", "rmos.db"),
			MaxRetries:      getEnvInt("DB_MAX_RETRIES", 5),
			RetryInterval:   getEnvDuration("DB_RETRY_INTERVAL", 2*time.Second),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Rate: RateConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 50),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 100),
		},
		Orders: OrderConfig{
			RejectInvalidLines: getEnvBool("ORDER_REJECT_INVALID_LINES", false),
			StrictTransitions:  getEnvBool("ORDER_STRICT_TRANSITIONS", false),
		},
	}
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Port:    "8000",
		GinMode: "debug",
		DB: DBConfig{
			Driver:          "sqlite",
			URL:             "rmos.db",
			MaxRetries:      5,
			RetryInterval:   2 * time.Second,
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			LogLevel:        "warn",
		},
		Log:  LogConfig{Level: "info", Format: "text"},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		Rate: RateConfig{RequestsPerSecond: 50, Burst: 100},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
