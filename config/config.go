package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Document store
	MongoURI string
	DBName   string

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Analytics collector (Measurement Protocol)
	GATrackingID      string
	AnalyticsEndpoint string // override for tests; empty means the public collector
	AnalyticsTimeout  time.Duration

	// Debug echo key
	UniqueKey string

	// Redis (rate limiting)
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RateLimitEnabled bool

	// CORS
	CORSAllowedOrigins string // comma-separated; empty allows all origins

	// Debug endpoints (/debug/vars, /debug/echo)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "movie-review-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI: getenv("DB", "mongodb://localhost:27017"),
		DBName:   getenv("DB_NAME", "movie_api"),

		JWTSecret: getenv("SECRET_KEY", "devsecret"),
		JWTTTL:    getdur("JWT_TTL", 24*time.Hour),

		GATrackingID:      getenv("GA_KEY", ""),
		AnalyticsEndpoint: getenv("ANALYTICS_ENDPOINT", ""),
		AnalyticsTimeout:  getdur("ANALYTICS_TIMEOUT", 5*time.Second),

		UniqueKey: getenv("UNIQUE_KEY", ""),

		RedisAddr:        getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getenv("REDIS_PASSWORD", ""),
		RedisDB:          getint("REDIS_DB", 0),
		RateLimitEnabled: getbool("RATE_LIMIT_ENABLED", false),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
