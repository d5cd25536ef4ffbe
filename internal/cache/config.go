package cache

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the recognized disk/memory cache settings, plus the
// ambient logging/metrics knobs a real deployment needs.
//
// Settings are read with getEnvAsX helpers against os.Getenv with
// defaults, called after an optional .env load via godotenv rather than
// a hand-rolled scanner.
type Config struct {
	DiskCacheEnabled    bool
	DiskCacheRoot       string
	PixelMemoryCacheMB  int64
	StringMemoryCacheMB int64

	LogLevel  string
	MetricsOn bool
}

// Load reads configuration from the environment, first loading a .env file
// from the working directory if one exists (a missing .env is not an
// error, matching godotenv's usual call convention in main packages).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiskCacheEnabled:    getEnvAsBool("CACHE_DISK_ENABLED", true),
		DiskCacheRoot:       getEnvAsString("CACHE_DISK_ROOT", ""),
		PixelMemoryCacheMB:  getEnvAsInt64("CACHE_PIXEL_MEMORY_MB", 64),
		StringMemoryCacheMB: getEnvAsInt64("CACHE_STRING_MEMORY_MB", 16),
		LogLevel:            getEnvAsString("CACHE_LOG_LEVEL", "info"),
		MetricsOn:           getEnvAsBool("CACHE_METRICS_ENABLED", false),
	}

	if cfg.PixelMemoryCacheMB < 0 || cfg.StringMemoryCacheMB < 0 {
		return nil, ErrConfigInvalid
	}
	return cfg, nil
}

// BuildCache wires a Config into a ready-to-use Cache: a zap logger at the
// configured level, optional Prometheus metrics, and the two memory tiers
// sized from the MB settings. Follows the usual bootstrap order: config,
// then logger, then dependent services.
func (c *Config) BuildCache() (*Cache, error) {
	zapLevel, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zapLevel
	zl, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	logger := NewZapLogger(zl)

	var metrics *Metrics
	if c.MetricsOn {
		metrics = NewMetrics()
	}

	disk := NewDiskStore(c.DiskCacheEnabled, c.DiskCacheRoot, logger, metrics)

	return NewCache(disk, c.PixelMemoryCacheMB*1024*1024, c.StringMemoryCacheMB*1024*1024, logger, metrics)
}

func getEnvAsString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
