package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// DevJWTSecret is the signing secret used when JWT_SECRET is unset in a
// local-like profile. Production-like profiles refuse to start without an
// explicit secret.
const DevJWTSecret = "dev-only-insecure-jwt-secret-change-me-0123456789"

const (
	DefaultJWTTTL     = 2 * time.Hour
	DefaultBcryptCost = 10
)

type Config struct {
	Env      string
	HTTPPort string

	DatabaseDriver string
	DatabaseURL    string

	JWTIssuer           string
	JWTSecret           string
	JWTSecretFromEnv    bool
	JWTTTL              time.Duration
	AuthBcryptCost      int
	AuthHashConcurrency int64
	CORSAllowedOrigins  []string

	AuthRateLimitPerMin   int
	APIRateLimitPerMin    int
	RateLimitRedisEnabled bool
	RateLimitRedisPrefix  string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int

	StorageEnabled   bool
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	OTELServiceName           string
	OTELEnvironment           string
	OTELExporterOTLPEndpoint  string
	OTELExporterOTLPInsecure  bool
	OTELMetricsExportInterval time.Duration
	OTELTraceSamplingRatio    float64
	OTELMetricsEnabled        bool
	OTELTracingEnabled        bool
	OTELLogsEnabled           bool
	OTELLogLevel              string

	ReadinessProbeTimeout        time.Duration
	ServerStartGracePeriod       time.Duration
	ShutdownTimeout              time.Duration
	ShutdownHTTPDrainTimeout     time.Duration
	ShutdownObservabilityTimeout time.Duration
}

func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	secret, secretSet := os.LookupEnv("JWT_SECRET")
	secret = strings.TrimSpace(secret)
	secretFromEnv := secretSet && secret != ""
	if !secretFromEnv && IsLocalLikeEnv(env) {
		secret = DevJWTSecret
	}

	origins := splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = splitCSV(getEnv("CLIENT_URL", "http://localhost:5173"))
	}

	cfg := &Config{
		Env:                   env,
		HTTPPort:              getEnv("HTTP_PORT", getEnv("PORT", "3001")),
		DatabaseDriver:        strings.ToLower(getEnv("DATABASE_DRIVER", "postgres")),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		JWTIssuer:             getEnv("JWT_ISSUER", "lost-and-found-backend"),
		JWTSecret:             secret,
		JWTSecretFromEnv:      secretFromEnv,
		AuthBcryptCost:        getEnvInt("AUTH_BCRYPT_COST", DefaultBcryptCost),
		AuthHashConcurrency:   int64(getEnvInt("AUTH_HASH_CONCURRENCY", runtime.NumCPU())),
		CORSAllowedOrigins:    origins,
		AuthRateLimitPerMin:   getEnvInt("AUTH_RATE_LIMIT_PER_MIN", 30),
		APIRateLimitPerMin:    getEnvInt("API_RATE_LIMIT_PER_MIN", 120),
		RateLimitRedisEnabled: getEnvBool("RATE_LIMIT_REDIS_ENABLED", false),
		RateLimitRedisPrefix:  getEnv("RATE_LIMIT_REDIS_PREFIX", "rl"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvInt("REDIS_DB", 0),

		StorageEnabled:   getEnvBool("STORAGE_ENABLED", false),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "lost-item-photos"),
		StorageUseSSL:    getEnvBool("STORAGE_USE_SSL", false),

		OTELServiceName:          getEnv("OTEL_SERVICE_NAME", "lost-and-found-backend"),
		OTELEnvironment:          getEnv("OTEL_ENVIRONMENT", env),
		OTELExporterOTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTELExporterOTLPInsecure: getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		OTELTraceSamplingRatio:   getEnvFloat("OTEL_TRACE_SAMPLING_RATIO", 1.0),
		OTELMetricsEnabled:       getEnvBool("OTEL_METRICS_ENABLED", false),
		OTELTracingEnabled:       getEnvBool("OTEL_TRACING_ENABLED", false),
		OTELLogsEnabled:          getEnvBool("OTEL_LOGS_ENABLED", false),
		OTELLogLevel:             strings.ToLower(getEnv("OTEL_LOG_LEVEL", "info")),
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"JWT_TTL", DefaultJWTTTL.String(), &cfg.JWTTTL},
		{"OTEL_METRICS_EXPORT_INTERVAL", "10s", &cfg.OTELMetricsExportInterval},
		{"READINESS_PROBE_TIMEOUT", "1s", &cfg.ReadinessProbeTimeout},
		{"SERVER_START_GRACE_PERIOD", "0s", &cfg.ServerStartGracePeriod},
		{"SHUTDOWN_TIMEOUT", "20s", &cfg.ShutdownTimeout},
		{"SHUTDOWN_HTTP_DRAIN_TIMEOUT", "10s", &cfg.ShutdownHTTPDrainTimeout},
		{"SHUTDOWN_OBSERVABILITY_TIMEOUT", "8s", &cfg.ShutdownObservabilityTimeout},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, "DATABASE_DRIVER must be one of postgres, sqlite")
	}
	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	} else if len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 chars")
	}
	if c.JWTTTL <= 0 || c.JWTTTL > 24*time.Hour {
		errs = append(errs, "JWT_TTL must be between 1s and 24h")
	}
	if c.AuthBcryptCost < 4 || c.AuthBcryptCost > 31 {
		errs = append(errs, "AUTH_BCRYPT_COST must be between 4 and 31")
	} else if c.AuthBcryptCost < DefaultBcryptCost && !IsTestEnv(c.Env) {
		errs = append(errs, fmt.Sprintf("AUTH_BCRYPT_COST must be >= %d outside the test profile", DefaultBcryptCost))
	}
	if c.AuthHashConcurrency <= 0 {
		errs = append(errs, "AUTH_HASH_CONCURRENCY must be > 0")
	}
	if c.AuthRateLimitPerMin <= 0 {
		errs = append(errs, "AUTH_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.APIRateLimitPerMin <= 0 {
		errs = append(errs, "API_RATE_LIMIT_PER_MIN must be > 0")
	}
	if c.RateLimitRedisEnabled && c.RedisAddr == "" {
		errs = append(errs, "REDIS_ADDR is required when RATE_LIMIT_REDIS_ENABLED=true")
	}
	if c.StorageEnabled {
		if c.StorageEndpoint == "" || c.StorageBucket == "" {
			errs = append(errs, "STORAGE_ENDPOINT and STORAGE_BUCKET are required when STORAGE_ENABLED=true")
		}
		if c.StorageAccessKey == "" || c.StorageSecretKey == "" {
			errs = append(errs, "STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required when STORAGE_ENABLED=true")
		}
	}
	if (c.OTELMetricsEnabled || c.OTELTracingEnabled || c.OTELLogsEnabled) && c.OTELExporterOTLPEndpoint == "" {
		errs = append(errs, "OTEL_EXPORTER_OTLP_ENDPOINT is required when OTel is enabled")
	}
	if c.OTELTraceSamplingRatio < 0 || c.OTELTraceSamplingRatio > 1 {
		errs = append(errs, "OTEL_TRACE_SAMPLING_RATIO must be between 0 and 1")
	}
	if c.OTELMetricsExportInterval <= 0 {
		errs = append(errs, "OTEL_METRICS_EXPORT_INTERVAL must be > 0")
	}
	if !isValidLogLevel(c.OTELLogLevel) {
		errs = append(errs, "OTEL_LOG_LEVEL must be one of debug, info, warn, error")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be > 0")
	}
	if c.ShutdownHTTPDrainTimeout <= 0 || c.ShutdownHTTPDrainTimeout > c.ShutdownTimeout {
		errs = append(errs, "SHUTDOWN_HTTP_DRAIN_TIMEOUT must be > 0 and <= SHUTDOWN_TIMEOUT")
	}

	if !IsLocalLikeEnv(c.Env) {
		if !c.JWTSecretFromEnv || c.JWTSecret == DevJWTSecret {
			errs = append(errs, "JWT_SECRET must be set explicitly outside local profiles")
		}
		if c.DatabaseDriver == "sqlite" {
			errs = append(errs, "DATABASE_DRIVER=sqlite is not allowed outside local profiles")
		}
		for _, o := range c.CORSAllowedOrigins {
			if o == "*" {
				errs = append(errs, "CORS_ALLOWED_ORIGINS must not contain * outside local profiles")
				break
			}
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// UsesDevSecret reports whether the process fell back to DevJWTSecret.
func (c *Config) UsesDevSecret() bool {
	return !c.JWTSecretFromEnv && c.JWTSecret == DevJWTSecret
}

// IsTestEnv reports whether env is the test profile, the only one allowed a
// bcrypt cost below DefaultBcryptCost.
func IsTestEnv(env string) bool {
	return strings.EqualFold(strings.TrimSpace(env), "test")
}

func IsLocalLikeEnv(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev", "local", "test":
		return true
	default:
		return false
	}
}

func isValidLogLevel(v string) bool {
	switch strings.ToLower(v) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trim := strings.TrimSpace(p)
		if trim != "" {
			out = append(out, trim)
		}
	}
	return out
}
