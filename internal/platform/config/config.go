package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	DataDir      string

	// Rates engine
	BaseCurrency     string
	RatesTTL         time.Duration
	RefreshInterval  time.Duration
	EnableBackground bool

	// Upstream sources
	CoinGeckoURL       string
	ExchangeRateAPIURL string
	ExchangeRateAPIKey string
	HTTPClientTimeout  time.Duration
	CryptoCacheTTL     time.Duration
	FiatCacheTTL       time.Duration

	// Response cache backend
	RedisAddr    string
	RedisDB      int
	CacheSizeMB  int
	CacheEnabled bool

	// Auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AuthRateLimit     string

	// Integrations
	KafkaBrokers     []string
	KafkaTradesTopic string
	PosthogAPIKey    string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RATES_TTL", "300s")
	viper.SetDefault("REFRESH_INTERVAL", "300s")
	viper.SetDefault("ENABLE_BACKGROUND_REFRESH", true)
	viper.SetDefault("COINGECKO_URL", "https://api.coingecko.com/api/v3/simple/price")
	viper.SetDefault("EXCHANGERATE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("EXCHANGERATE_API_KEY", "")
	viper.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	viper.SetDefault("CRYPTO_CACHE_TTL", "300s")
	viper.SetDefault("FIAT_CACHE_TTL", "1h")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_SIZE_MB", 32)
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "paperfx")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TRADES_TOPIC", "paperfx.trades")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataDir = viper.GetString("DATA_DIR")

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	cfg.RatesTTL = parseDurationOr("RATES_TTL", 300*time.Second)
	cfg.RefreshInterval = parseDurationOr("REFRESH_INTERVAL", 300*time.Second)
	cfg.EnableBackground = viper.GetBool("ENABLE_BACKGROUND_REFRESH")

	cfg.CoinGeckoURL = viper.GetString("COINGECKO_URL")
	cfg.ExchangeRateAPIURL = viper.GetString("EXCHANGERATE_API_URL")
	cfg.ExchangeRateAPIKey = viper.GetString("EXCHANGERATE_API_KEY")
	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGERATE_API_KEY not set. The fiat source will be unavailable.")
	}
	cfg.HTTPClientTimeout = parseDurationOr("HTTP_CLIENT_TIMEOUT", 10*time.Second)
	cfg.CryptoCacheTTL = parseDurationOr("CRYPTO_CACHE_TTL", 300*time.Second)
	cfg.FiatCacheTTL = parseDurationOr("FIAT_CACHE_TTL", time.Hour)

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.CacheSizeMB = viper.GetInt("CACHE_SIZE_MB")
	cfg.CacheEnabled = viper.GetBool("CACHE_ENABLED")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	if brokers := viper.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}
	cfg.KafkaTradesTopic = viper.GetString("KAFKA_TRADES_TOPIC")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
