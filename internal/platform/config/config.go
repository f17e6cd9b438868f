package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AuthCookieName    string
	AuthCookiePath    string

	// External exchange rate provider
	RatesAPIBaseURL string
	RatesCacheTTL   time.Duration

	// Fallback reporting currency when the company has none configured.
	DefaultCurrency string

	// Requests per period for the currency conversion endpoints.
	ConvertRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "invoxa-backend")
	viper.SetDefault("AUTH_COOKIE_NAME", "auth_token")
	viper.SetDefault("AUTH_COOKIE_PATH", "/")
	viper.SetDefault("RATES_API_BASE_URL", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("RATES_CACHE_TTL", "1h")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("CONVERT_RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")
	cfg.AuthCookiePath = viper.GetString("AUTH_COOKIE_PATH")

	cfg.RatesAPIBaseURL = viper.GetString("RATES_API_BASE_URL")

	ttlStr := viper.GetString("RATES_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = time.Hour
		log.Printf("Warning: Invalid value for RATES_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.RatesCacheTTL = ttl

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.ConvertRateLimit = viper.GetString("CONVERT_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
