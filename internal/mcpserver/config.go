package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/agsn10/kelari-api-documentation-sub001/cache"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Persistent cache settings.
	CacheEnabled   bool
	CacheDir       string
	CacheNamespace string

	// Acquirer settings.
	HTTPTimeout time.Duration

	// Tool output settings.
	IssueLimit    int
	MaxLimit      int
	MaxInlineSize int64

	// Minimum level for stderr log output.
	LogLevel slog.Level
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from KELARI_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:   envBool("KELARI_CACHE_ENABLED", true),
		CacheDir:       os.Getenv("KELARI_CACHE_DIR"),
		CacheNamespace: envString("KELARI_CACHE_NAMESPACE", cache.DefaultNamespace),
		HTTPTimeout:    envDuration("KELARI_HTTP_TIMEOUT", 30*time.Second),
		IssueLimit:     envInt("KELARI_ISSUE_LIMIT", 100),
		MaxLimit:       envInt("KELARI_MAX_LIMIT", 1000),
		MaxInlineSize:  envInt64("KELARI_MAX_INLINE_SIZE", 4*1024*1024),
		LogLevel:       envLevel("KELARI_LOG_LEVEL", slog.LevelInfo),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}
