// Package config manages application configuration via environment variables.
//
// # Environment Variables
//
// ## NewsData.io
//   - NEWSDATA_API_KEY: NewsData.io API key. No default; the provider client
//     reports a missing credential on first use rather than at startup.
//   - NEWSDATA_BASE_URL: Base URL of the news endpoint (default: https://newsdata.io/api/1/news)
//   - NEWS_LANGUAGE: Language filter for provider requests (default: en)
//   - NEWS_MAX_RESULTS: Result size cap per request, provider max is 10 (default: 10)
//   - NEWS_CATEGORIES: Category filter, comma-separated (default: business,technology)
//   - PROVIDER_TIMEOUT_SECONDS: HTTP timeout for provider calls (default: 10)
//
// ## Cache
//   - NEWS_CACHE_TTL_MINUTES: TTL for cached search results (default: 10)
//   - NEWS_CACHE_MAX_ENTRIES: Max cached search terms before eviction (default: 500)
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//
// ## Tracing
//   - TRACING_ENABLED: Enable OpenTelemetry tracing (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC collector endpoint (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// NewsData.io provider configuration
	NewsDataAPIKey  string
	NewsDataBaseURL string
	NewsLanguage    string
	NewsMaxResults  int
	NewsCategories  string
	ProviderTimeout time.Duration

	// Result cache configuration
	CacheTTL        time.Duration
	CacheMaxEntries int

	ServerPort string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		NewsDataAPIKey:  getEnv("NEWSDATA_API_KEY", ""),
		NewsDataBaseURL: getEnv("NEWSDATA_BASE_URL", "https://newsdata.io/api/1/news"),
		NewsLanguage:    getEnv("NEWS_LANGUAGE", "en"),
		NewsMaxResults:  getEnvInt("NEWS_MAX_RESULTS", 10),
		NewsCategories:  getEnv("NEWS_CATEGORIES", "business,technology"),
		ProviderTimeout: time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 10)) * time.Second,

		CacheTTL:        time.Duration(getEnvInt("NEWS_CACHE_TTL_MINUTES", 10)) * time.Minute,
		CacheMaxEntries: getEnvInt("NEWS_CACHE_MAX_ENTRIES", 500),

		ServerPort: getEnv("SERVER_PORT", "8080"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
