// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the server settings, read from the environment with local
// development defaults.
type Config struct {
	Port           string
	Env            string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	OTLPEndpoint   string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		Port:           env("PORT", "8080"),
		Env:            env("APP_ENV", "dev"),
		AllowedOrigins: strings.Split(env("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 40),
		OTLPEndpoint:   os.Getenv("OTLP_ENDPOINT"),
	}
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("config loaded")
	return cfg
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid integer env value, using default")
		return def
	}
	return n
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid float env value, using default")
		return def
	}
	return f
}
