package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ServerConfig is the HTTP server configuration, read from the environment.
type ServerConfig struct {
	Port           string        `envconfig:"API_PORT" default:"8080"`
	Env            string        `envconfig:"API_ENV" default:"development"`
	DataDir        string        `envconfig:"DATA_DIR" default:"./data"`
	StaticDir      string        `envconfig:"STATIC_DIR" default:"./web/dist"`
	ConfigFile     string        `envconfig:"CONFIG_FILE"`
	ResultTTL      time.Duration `envconfig:"RESULT_TTL" default:"1h"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func (c ServerConfig) Production() bool { return c.Env == "production" }

// LoadServer loads .env when present, then maps the environment.
func LoadServer() (*ServerConfig, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
