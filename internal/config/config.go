package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Resolution engine
	CivilOffset  time.Duration // fixed local civil offset, default 9h (JST)
	MaxOngoing   time.Duration // cap for start-only windows, default 6h
	InferredLead time.Duration // assumed lead before an end-only override, default 1h

	// Schedule source
	DirectusURL        string        // base URL of the Directus instance (empty = use ScheduleFile)
	DirectusToken      string        // optional static token
	DirectusCollection string        // collection holding the schedule items
	ScheduleFile       string        // path to a local schedule.yaml (fallback / dev source)
	SourceTimeout      time.Duration // per-fetch HTTP timeout
	ReloadInterval     time.Duration // interval between source refreshes
	SnapshotTTL        time.Duration // redis TTL of the last-good snapshot

	// Admin write paths
	AdminToken string // shared secret for X-Admin-Token; empty disables the check

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedCIDRS []string // optional, restrict admin endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins  []string // origins allowed on the public read API ("*" = any)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LIVE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LIVE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LIVE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LIVE_PRETTY_LOG", true),

		// Engine tunables
		CivilOffset:  time.Duration(getenvInt("LIVE_CIVIL_OFFSET_MIN", 540)) * time.Minute,
		MaxOngoing:   mustDuration("LIVE_MAX_ONGOING", 6*time.Hour),
		InferredLead: mustDuration("LIVE_INFERRED_LEAD", time.Hour),

		// Source settings
		DirectusURL:        getenv("LIVE_DIRECTUS_URL", ""),
		DirectusToken:      getenv("LIVE_DIRECTUS_TOKEN", ""),
		DirectusCollection: getenv("LIVE_DIRECTUS_COLLECTION", "schedules"),
		ScheduleFile:       getenv("LIVE_SCHEDULE_FILE", ""),
		SourceTimeout:      mustDuration("LIVE_SOURCE_TIMEOUT", 10*time.Second),
		ReloadInterval:     mustDuration("LIVE_RELOAD_INTERVAL", 5*time.Minute),
		SnapshotTTL:        mustDuration("LIVE_SNAPSHOT_TTL", 48*time.Hour),

		// Admin
		AdminToken: getenv("LIVE_ADMIN_TOKEN", ""),

		// Redis settings
		RedisAddr:             requireEnv("LIVE_REDIS_ADDR"),
		RedisUser:             getenv("LIVE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LIVE_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("LIVE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LIVE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedCIDRS: splitAndTrim(getenv("LIVE_ADMIN_CIDRS", "")),
		TrustProxy:   mustBool("LIVE_TRUST_PROXY", true),
		CORSOrigins:  splitAndTrim(getenv("LIVE_CORS_ORIGINS", "*")),
	}

	// At least one schedule source must be configured.
	if cfg.DirectusURL == "" && cfg.ScheduleFile == "" {
		panic("❌ FATAL: Neither LIVE_DIRECTUS_URL nor LIVE_SCHEDULE_FILE is set")
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: LIVE_REDIS_PASSWORD is required when LIVE_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.AdminToken == "" {
		log.Println("[WARN] LIVE_ADMIN_TOKEN not set - admin endpoints are unauthenticated")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.DirectusToken = "***REDACTED***"
		cfgCopy.AdminToken = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
