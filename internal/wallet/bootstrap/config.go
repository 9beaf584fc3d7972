package bootstrap

import (
	"fmt"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/database"
	"github.com/caarlos0/env/v11"
)

type WalletConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string `env:"HTTP_PORT" envDefault:":8080"`
}

func LoadWalletConfig() (WalletConfig, error) {
	var cfg WalletConfig
	if err := env.Parse(&cfg); err != nil {
		return WalletConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
