package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName            string
	AppEnv             string
	AppPort            string
	RedisURL           string
	PositionsKey       string
	GenerationDelay    time.Duration
	QuestionSessionTTL time.Duration
	GenerateRateMax    int
	GenerateRateWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HIREHAND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "HireHand API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("positions.key", "hirehand-positions-v2")
	v.SetDefault("generation.delay", "3s")
	v.SetDefault("question.session_ttl", "1h")
	v.SetDefault("generate.rate_max", 5)
	v.SetDefault("generate.rate_window", "1m")

	delay, err := time.ParseDuration(v.GetString("generation.delay"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid generation delay: %w", err)
	}

	sessionTTL, err := time.ParseDuration(v.GetString("question.session_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid question session ttl: %w", err)
	}

	rateWindow, err := time.ParseDuration(v.GetString("generate.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid generate rate window: %w", err)
	}

	cfg := Config{
		AppName:            v.GetString("app.name"),
		AppEnv:             v.GetString("app.env"),
		AppPort:            v.GetString("app.port"),
		RedisURL:           v.GetString("redis.url"),
		PositionsKey:       v.GetString("positions.key"),
		GenerationDelay:    delay,
		QuestionSessionTTL: sessionTTL,
		GenerateRateMax:    v.GetInt("generate.rate_max"),
		GenerateRateWindow: rateWindow,
	}

	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("redis url must be provided")
	}

	return cfg, nil
}
