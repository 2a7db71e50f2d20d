package config

import (
	"fmt"
	"time"
)

// ClientConfig configures the terminal client.
type ClientConfig struct {
	// ServerAddress is the base URL of the vault server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds every outbound call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// Debug enables a client log file under the user cache directory.
	// Env: CLIENT_DEBUG
	Debug bool `env:"DEBUG"`
}

// GetClientConfig loads the client configuration from CLIENT_* environment
// variables. Command-line flags are applied on top by the caller before
// Validate.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &clientEnvelope{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return &cfg.Client, cfg.Client.validate()
}

// Validate re-checks the client configuration after flag overrides.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}

type clientEnvelope struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}
