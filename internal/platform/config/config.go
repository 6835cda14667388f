package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. FromEnv keeps main lean; every
// value has a development default so the service boots with an empty
// environment and in-memory stores.
type Server struct {
	Addr string

	// DatabaseURL selects the postgres-backed stores when set; empty means
	// in-memory stores seeded with the bundled registry data.
	DatabaseURL string

	// RedisURL enables the verification result cache when set.
	RedisURL string

	// KafkaBrokers enables mirroring verification log entries to Kafka.
	KafkaBrokers []string
	KafkaTopic   string

	// AdminAPIKeyHash is a bcrypt hash of the API key required by admin
	// endpoints (blacklist reporting, log queries).
	AdminAPIKeyHash string

	// JWTSigningKey verifies optional end-user bearer tokens so verification
	// logs can carry a user ID.
	JWTSigningKey string

	// LookupTimeout bounds each registry query inside a verification.
	LookupTimeout time.Duration

	// CacheTTL bounds how long a verification verdict may be served from
	// cache. Kept short so blacklist additions take effect quickly.
	CacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:            getenv("TRUADBOON_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		KafkaTopic:      getenv("KAFKA_VERIFYLOG_TOPIC", "truadboon.verification-logs"),
		AdminAPIKeyHash: os.Getenv("ADMIN_API_KEY_HASH"),
		JWTSigningKey:   os.Getenv("JWT_SIGNING_KEY"),
		LookupTimeout:   getenvDuration("LOOKUP_TIMEOUT", 3*time.Second),
		CacheTTL:        getenvDuration("VERIFY_CACHE_TTL", 60*time.Second),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Accept bare seconds for operator convenience.
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
