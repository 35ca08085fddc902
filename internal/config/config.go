package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GRPCHost           string
	GRPCPort           int
	GRPCRequestTimeout time.Duration

	HTTPAddr           string
	HTTPRequestTimeout time.Duration
	HTTPMaxBodyBytes   int64
	CORSAllowedOrigins []string

	// DatabaseURL selects the Postgres calendar store. Empty keeps busy
	// periods in process memory.
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBConnMaxIdleTime time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	BreakerMaxRequests  uint32
	BreakerInterval     time.Duration
	BreakerTimeout      time.Duration
	BreakerFailureRatio float64
	BreakerMinRequests  uint32

	MaxRangeDays    int
	DefaultCalendar string

	OTelEnabled     bool
	OTelEndpoint    string
	OTelSampleRatio float64

	ShutdownTimeout time.Duration
	LogLevel        string
}

func (c Config) GRPCAddr() string {
	return net.JoinHostPort(c.GRPCHost, strconv.Itoa(c.GRPCPort))
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OPENHOURS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("grpc.addr", "")
	v.SetDefault("grpc.request_timeout", "10s")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.request_timeout", "10s")
	v.SetDefault("http.max_body_bytes", 1<<20)
	v.SetDefault("http.cors_allowed_origins", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.conn_max_idle_time", "5m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("breaker.max_requests", 5)
	v.SetDefault("breaker.interval", "30s")
	v.SetDefault("breaker.timeout", "60s")
	v.SetDefault("breaker.failure_ratio", 0.6)
	v.SetDefault("breaker.min_requests", 10)
	v.SetDefault("availability.max_range_days", 366)
	v.SetDefault("availability.default_calendar", "primary")
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "localhost:4317")
	v.SetDefault("otel.sample_ratio", 1.0)
	v.SetDefault("shutdown.timeout", "10s")
	v.SetDefault("log.level", "info")

	_ = v.BindEnv("grpc.host", "OPENHOURS_GRPC_HOST", "GRPC_HOST")
	_ = v.BindEnv("grpc.port", "OPENHOURS_GRPC_PORT", "GRPC_PORT")
	_ = v.BindEnv("grpc.addr", "OPENHOURS_GRPC_ADDR", "GRPC_ADDR")
	_ = v.BindEnv("grpc.request_timeout", "OPENHOURS_GRPC_REQUEST_TIMEOUT")
	_ = v.BindEnv("http.addr", "OPENHOURS_HTTP_ADDR", "HTTP_ADDR")
	_ = v.BindEnv("http.request_timeout", "OPENHOURS_HTTP_REQUEST_TIMEOUT")
	_ = v.BindEnv("http.max_body_bytes", "OPENHOURS_HTTP_MAX_BODY_BYTES")
	_ = v.BindEnv("http.cors_allowed_origins", "OPENHOURS_HTTP_CORS_ALLOWED_ORIGINS")
	_ = v.BindEnv("database.url", "OPENHOURS_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("database.max_open_conns", "OPENHOURS_DATABASE_MAX_OPEN_CONNS")
	_ = v.BindEnv("database.max_idle_conns", "OPENHOURS_DATABASE_MAX_IDLE_CONNS")
	_ = v.BindEnv("database.conn_max_lifetime", "OPENHOURS_DATABASE_CONN_MAX_LIFETIME")
	_ = v.BindEnv("database.conn_max_idle_time", "OPENHOURS_DATABASE_CONN_MAX_IDLE_TIME")
	_ = v.BindEnv("redis.addr", "OPENHOURS_REDIS_ADDR", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "OPENHOURS_REDIS_PASSWORD", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "OPENHOURS_REDIS_DB")
	_ = v.BindEnv("cache.ttl", "OPENHOURS_CACHE_TTL")
	_ = v.BindEnv("breaker.max_requests", "OPENHOURS_BREAKER_MAX_REQUESTS")
	_ = v.BindEnv("breaker.interval", "OPENHOURS_BREAKER_INTERVAL")
	_ = v.BindEnv("breaker.timeout", "OPENHOURS_BREAKER_TIMEOUT")
	_ = v.BindEnv("breaker.failure_ratio", "OPENHOURS_BREAKER_FAILURE_RATIO")
	_ = v.BindEnv("breaker.min_requests", "OPENHOURS_BREAKER_MIN_REQUESTS")
	_ = v.BindEnv("availability.max_range_days", "OPENHOURS_AVAILABILITY_MAX_RANGE_DAYS")
	_ = v.BindEnv("availability.default_calendar", "OPENHOURS_AVAILABILITY_DEFAULT_CALENDAR")
	_ = v.BindEnv("otel.enabled", "OPENHOURS_OTEL_ENABLED")
	_ = v.BindEnv("otel.endpoint", "OPENHOURS_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("otel.sample_ratio", "OPENHOURS_OTEL_SAMPLE_RATIO")
	_ = v.BindEnv("shutdown.timeout", "OPENHOURS_SHUTDOWN_TIMEOUT", "SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("log.level", "OPENHOURS_LOG_LEVEL", "LOG_LEVEL")

	var cfg Config
	durations := map[string]*time.Duration{
		"grpc.request_timeout":        &cfg.GRPCRequestTimeout,
		"http.request_timeout":        &cfg.HTTPRequestTimeout,
		"database.conn_max_lifetime":  &cfg.DBConnMaxLifetime,
		"database.conn_max_idle_time": &cfg.DBConnMaxIdleTime,
		"cache.ttl":                   &cfg.CacheTTL,
		"breaker.interval":            &cfg.BreakerInterval,
		"breaker.timeout":             &cfg.BreakerTimeout,
		"shutdown.timeout":            &cfg.ShutdownTimeout,
	}
	for key, dst := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}

	if addr := strings.TrimSpace(v.GetString("grpc.addr")); addr != "" {
		host, portStr, err := net.SplitHostPort(addr)
		if err == nil {
			if host != "" {
				v.Set("grpc.host", host)
			}
			if port, err := strconv.Atoi(portStr); err == nil {
				v.Set("grpc.port", port)
			}
		}
	}

	cfg.GRPCHost = strings.TrimSpace(v.GetString("grpc.host"))
	cfg.GRPCPort = v.GetInt("grpc.port")
	cfg.HTTPAddr = strings.TrimSpace(v.GetString("http.addr"))
	cfg.HTTPMaxBodyBytes = v.GetInt64("http.max_body_bytes")
	cfg.CORSAllowedOrigins = splitList(v.GetString("http.cors_allowed_origins"))
	cfg.DatabaseURL = strings.TrimSpace(v.GetString("database.url"))
	cfg.DBMaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.DBMaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.RedisAddr = strings.TrimSpace(v.GetString("redis.addr"))
	cfg.RedisPassword = v.GetString("redis.password")
	cfg.RedisDB = v.GetInt("redis.db")
	cfg.BreakerMaxRequests = v.GetUint32("breaker.max_requests")
	cfg.BreakerFailureRatio = v.GetFloat64("breaker.failure_ratio")
	cfg.BreakerMinRequests = v.GetUint32("breaker.min_requests")
	cfg.MaxRangeDays = v.GetInt("availability.max_range_days")
	cfg.DefaultCalendar = strings.TrimSpace(v.GetString("availability.default_calendar"))
	cfg.OTelEnabled = v.GetBool("otel.enabled")
	cfg.OTelEndpoint = strings.TrimSpace(v.GetString("otel.endpoint"))
	cfg.OTelSampleRatio = v.GetFloat64("otel.sample_ratio")
	cfg.LogLevel = v.GetString("log.level")

	if cfg.MaxRangeDays <= 0 {
		return Config{}, fmt.Errorf("availability.max_range_days must be positive, got %d", cfg.MaxRangeDays)
	}
	if cfg.BreakerFailureRatio <= 0 || cfg.BreakerFailureRatio > 1 {
		return Config{}, fmt.Errorf("breaker.failure_ratio must be in (0,1], got %v", cfg.BreakerFailureRatio)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
