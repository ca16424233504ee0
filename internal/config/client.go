package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds the settings of the command-line client's connection
// to the API server. Values come from the environment and may be overridden
// by the client's flags.
type ClientAdapter struct {
	// HTTPAddress is the base address of the API server, with or without a
	// scheme (e.g. "localhost:8080" or "https://shop.example.com").
	// Env: SHOP_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds every request made by the client.
	// Env: SHOP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// Token is the bearer token sent with authenticated requests.
	// Env: SHOP_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientAdapterConfig reads the SHOP_* environment variables.
func GetClientAdapterConfig() (ClientAdapter, error) {
	cfg, err := env.ParseAsWithOptions[ClientAdapter](env.Options{Prefix: "SHOP_"})
	if err != nil {
		return ClientAdapter{}, fmt.Errorf("error getting client env configs: %w", err)
	}

	return cfg, nil
}
