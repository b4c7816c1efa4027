package server

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

// Config is read from LUDO_* environment variables. Unset variables take
// their defaults.
type Config struct {
	Port           string   `env:"LUDO_PORT,default=8000"`
	AllowedOrigins []string `env:"LUDO_ALLOWED_ORIGINS,default=*"`
	LogTurns       bool     `env:"LUDO_LOG_TURNS,default=false,strict"`
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func DefaultConfig() Config {
	return Config{
		Port:           "8000",
		AllowedOrigins: []string{"*"},
	}
}

// LoadConfig decodes the environment into a Config
func LoadConfig() (Config, error) {
	var c Config
	err := envdecode.Decode(&c)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return DefaultConfig(), nil
	}
	return c, nil
}
