package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"airscore-backend/internal/shared/telemetry"
)

// Catalog sources.
const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
	CatalogDocument = "document"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	ServiceVersion  string
	CORSAllowOrigin []string

	DatabaseURL        string
	CatalogSource      string
	CatalogDocumentKey string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	RedisAddr       string
	RedisKeyPrefix  string
	CacheTTL        time.Duration
	CacheMaxEntries int

	RateLimitRPS   float64
	RateLimitBurst int

	CompareConcurrency int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		ServiceVersion:  getEnv("SERVICE_VERSION", "dev"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		DatabaseURL:        dbURL,
		CatalogSource:      normalizeCatalogSource(getEnv("CATALOG_SOURCE", ""), dbURL),
		CatalogDocumentKey: getEnv("CATALOG_DOCUMENT_KEY", "reference/catalog.yaml"),

		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),

		RedisAddr:       strings.TrimSpace(getEnv("REDIS_ADDR", "")),
		RedisKeyPrefix:  getEnv("REDIS_KEY_PREFIX", "airscore:"),
		CacheTTL:        getDuration("CACHE_TTL", 10*time.Minute),
		CacheMaxEntries: getInt("CACHE_MAX_ENTRIES", 1024),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),

		CompareConcurrency: getInt("COMPARE_CONCURRENCY", 4),
	}

	if env == "production" && cfg.CatalogSource == CatalogPostgres && dbURL == "" {
		telemetry.Warn("config.missing", map[string]any{"key": "DATABASE_URL", "env": env})
	}
	return cfg
}

// IsDev reports whether the process runs in a developer environment.
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "local"
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err})
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err})
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err})
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

// normalizeCatalogSource defaults to postgres when a database is configured.
func normalizeCatalogSource(raw, databaseURL string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg", "db":
		return CatalogPostgres
	case "document", "doc", "object":
		return CatalogDocument
	case "memory", "builtin":
		return CatalogMemory
	}
	if strings.TrimSpace(databaseURL) != "" {
		return CatalogPostgres
	}
	return CatalogMemory
}
