package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del frontend.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	APIBaseURL        string `env:"API_BASE_URL,required"`
	APITimeoutSeconds int    `env:"API_TIMEOUT_SECONDS" envDefault:"15"`
	SessionTTLHours   int    `env:"SESSION_TTL_HOURS" envDefault:"24"`
	CookieSecure      bool   `env:"COOKIE_SECURE" envDefault:"false"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
