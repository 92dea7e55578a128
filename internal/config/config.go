package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration, loaded from the environment.
type Config struct {
	Env             string
	Port            string
	AppSecret       string
	SiteName        string
	SiteUrl         string
	MoviesDataFile  string // empty means the embedded default catalog
	ReviewsDataFile string // empty means the embedded default reviews
	SearchCacheSize int
	SearchCacheTTL  time.Duration
}

// Load reads the configuration from environment variables, with development
// defaults for everything. Unparsable or non-positive numeric values fall
// back to their defaults.
func Load() *Config {
	cacheSize := getEnvPositiveInt("SEARCH_CACHE_SIZE", 256)
	cacheTTLMin := getEnvPositiveInt("SEARCH_CACHE_TTL_MINUTES", 30)

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		AppSecret:       getEnv("APP_SECRET", "dev-secret-change-in-production"),
		SiteName:        getEnv("SITE_NAME", "Flicks"),
		SiteUrl:         getEnv("SITE_URL", "http://localhost:8080"),
		MoviesDataFile:  getEnv("MOVIES_DATA_FILE", ""),
		ReviewsDataFile: getEnv("REVIEWS_DATA_FILE", ""),
		SearchCacheSize: cacheSize,
		SearchCacheTTL:  time.Duration(cacheTTLMin) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvPositiveInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
