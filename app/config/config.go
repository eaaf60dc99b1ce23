package config

import (
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port     string
	Engine   EngineConfig
	DB       PostgresConfig
	Auth     AuthConfig
	QueueURL string
}

type EngineConfig struct {
	Depth    int // default search depth when a request omits one
	MaxDepth int // requests asking for more are clamped
}

type PostgresConfig struct {
	Username string
	Password string
	URL      string
	Port     string
}

type AuthConfig struct {
	Enabled  bool
	Issuer   string
	Audience string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:     envOr("PORT", "8080"),
		QueueURL: os.Getenv("QUEUE_URL"),
		Engine: EngineConfig{
			Depth:    envInt("ENGINE_DEPTH", 3),
			MaxDepth: envInt("ENGINE_MAX_DEPTH", 5),
		},
		DB: PostgresConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PWD"),
			URL:      os.Getenv("POSTGRES_URL"),
			Port:     envOr("POSTGRES_PORT", "5432"),
		},
		Auth: AuthConfig{
			Enabled:  envBool("AUTH_ENABLED"),
			Issuer:   os.Getenv("AUTH_ISSUER"),
			Audience: os.Getenv("AUTH_AUDIENCE"),
		},
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
