package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "redis" | "memory" (memory = dev/test only, not durable)

	SeedFile     string        // path to songbook.yaml, used to seed an empty catalog (optional)
	SyncInterval time.Duration // interval to re-sync the catalog from the store (default: 1h)

	ImportScheme    string        // deep-link scheme accepted by the import pipeline (default: "spiewnik")
	ImportTimeout   time.Duration // timeout for remote preset-file fetches (default: 10s)
	ImportMaxBytes  int64         // max size of a fetched preset file (default: 1MiB)
	ImportTmpDir    string        // scratch dir for content-ref copies (default: os.TempDir())
	ImportBurst     int           // rate-limit burst for the import endpoint
	ImportPerMinute int           // rate-limit refill per client per minute
	TrustProxy      bool          // true => resolve client IP from proxy headers

	// Redis (used when StoreBackend == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SONGBOOK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SONGBOOK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SONGBOOK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SONGBOOK_PRETTY_LOG", true),

		// Persistence
		StoreBackend: getenv("SONGBOOK_STORE", "redis"),

		// Catalog
		SeedFile:     getenv("SONGBOOK_SEED_FILE", ""),
		SyncInterval: mustDuration("SONGBOOK_SYNC_INTERVAL", time.Hour),

		// Import pipeline
		ImportScheme:    getenv("SONGBOOK_IMPORT_SCHEME", "spiewnik"),
		ImportTimeout:   mustDuration("SONGBOOK_IMPORT_TIMEOUT", 10*time.Second),
		ImportMaxBytes:  int64(getenvInt("SONGBOOK_IMPORT_MAX_BYTES", 1<<20)),
		ImportTmpDir:    getenv("SONGBOOK_IMPORT_TMP_DIR", os.TempDir()),
		ImportBurst:     getenvInt("SONGBOOK_IMPORT_BURST", 5),
		ImportPerMinute: getenvInt("SONGBOOK_IMPORT_PER_MINUTE", 10),
		TrustProxy:      mustBool("SONGBOOK_TRUST_PROXY", false),
	}

	if cfg.StoreBackend != "redis" && cfg.StoreBackend != "memory" {
		panic(fmt.Sprintf("❌ FATAL: SONGBOOK_STORE must be \"redis\" or \"memory\", got %q", cfg.StoreBackend))
	}

	if cfg.StoreBackend == "redis" {
		cfg.RedisAddr = requireEnv("SONGBOOK_REDIS_ADDR")
		cfg.RedisUser = getenv("SONGBOOK_REDIS_USERNAME", "default")
		cfg.RedisPassword = getenv("SONGBOOK_REDIS_PASSWORD", "")
		cfg.RedisDB = getenvInt("SONGBOOK_REDIS_DB", 0)
		cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
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
