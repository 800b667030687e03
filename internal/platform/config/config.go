package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StorageBackend    string
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// APIKeys maps an api key to the name of the machine client using it.
	APIKeys map[string]string

	// Signing provider (PAC)
	PACURL          string `mapstructure:"PAC_URL"`
	PACTokenURL     string `mapstructure:"PAC_TOKEN_URL"`
	PACClientID     string `mapstructure:"PAC_CLIENT_ID"`
	PACClientSecret string `mapstructure:"PAC_CLIENT_SECRET"`
	PACTestMode     bool   `mapstructure:"PAC_TEST_MODE"`
	PACTimeout      time.Duration

	// SAT status service
	SATURL          string `mapstructure:"SAT_URL"`
	SATTimeout      time.Duration
	SATSyncInterval time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	SATSyncRateLimit   string // per client, on the SAT sync endpoint
	CORSAllowedOrigins []string
	PosthogAPIKey      string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint    string `mapstructure:"POSTHOG_ENDPOINT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_BACKEND", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "l10n-addons")
	v.SetDefault("API_KEYS", "")
	v.SetDefault("PAC_URL", "")
	v.SetDefault("PAC_TOKEN_URL", "")
	v.SetDefault("PAC_CLIENT_ID", "")
	v.SetDefault("PAC_CLIENT_SECRET", "")
	v.SetDefault("PAC_TEST_MODE", true)
	v.SetDefault("PAC_TIMEOUT", "30s")
	v.SetDefault("SAT_URL", "")
	v.SetDefault("SAT_TIMEOUT", "15s")
	v.SetDefault("SAT_SYNC_INTERVAL", "1h")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("SAT_SYNC_RATE_LIMIT", "6-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")

	// Environment variables override .env values, which override the defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:   strings.ToLower(v.GetString("STORAGE_BACKEND")),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		PACURL:           v.GetString("PAC_URL"),
		PACTokenURL:      v.GetString("PAC_TOKEN_URL"),
		PACClientID:      v.GetString("PAC_CLIENT_ID"),
		PACClientSecret:  v.GetString("PAC_CLIENT_SECRET"),
		PACTestMode:      v.GetBool("PAC_TEST_MODE"),
		SATURL:           v.GetString("SAT_URL"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		SATSyncRateLimit: v.GetString("SAT_SYNC_RATE_LIMIT"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION", time.Hour); err != nil {
		return nil, err
	}
	if cfg.PACTimeout, err = parseDuration(v, "PAC_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.SATTimeout, err = parseDuration(v, "SAT_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.SATSyncInterval, err = parseDuration(v, "SAT_SYNC_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.APIKeys, err = parseAPIKeys(v.GetString("API_KEYS")); err != nil {
		return nil, err
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	for key, raw := range map[string]string{"RATE_LIMIT": cfg.RateLimit, "SAT_SYNC_RATE_LIMIT": cfg.SATSyncRateLimit} {
		if _, err := limiter.NewRateFromFormatted(raw); err != nil {
			return nil, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
		}
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			slog.Warn("PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q, expected %s or %s", cfg.StorageBackend, StoragePostgres, StorageMemory)
	}

	if !cfg.PACTestMode && cfg.PACURL == "" {
		return nil, fmt.Errorf("PAC_URL is required when PAC_TEST_MODE is false")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		slog.Warn("JWT_SECRET is the default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

// parseAPIKeys reads "client:key,client2:key2".
func parseAPIKeys(raw string) (map[string]string, error) {
	keys := make(map[string]string)
	for _, entry := range splitList(raw) {
		client, key, ok := strings.Cut(entry, ":")
		if !ok || client == "" || key == "" {
			return nil, fmt.Errorf("invalid API_KEYS entry %q, expected client:key", entry)
		}
		keys[key] = client
	}
	return keys, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
