// Package config loads the process configuration from ORDERWATCH_* environment
// variables and validates it.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/orderwatch/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ORDERWATCH"

type Redis struct {
	Addr      string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" default:"0" validate:"gte=0"`
	Namespace string `envconfig:"NAMESPACE" default:"orderwatch" validate:"required"`
}

type HTTP struct {
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
}

type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"orderwatch" validate:"required"`

	RPCURL              string        `envconfig:"RPC_URL" validate:"required,url"`
	ChainID             int64         `envconfig:"CHAIN_ID" default:"1" validate:"gt=0"`
	ContractAddress     string        `envconfig:"CONTRACT_ADDRESS" default:"0x5b8902de436A13Cb5097a7cF9bAd16c30fbf5902" validate:"required,eth_addr"`
	ReceiptPollInterval time.Duration `envconfig:"RECEIPT_POLL_INTERVAL" default:"12s" validate:"gt=0"`

	ExplorerURL       string        `envconfig:"EXPLORER_URL" default:"https://api.etherscan.io/v2/api" validate:"required,url"`
	ExplorerAPIKey    string        `envconfig:"EXPLORER_API_KEY" validate:"required"`
	ExplorerRateLimit time.Duration `envconfig:"EXPLORER_RATE_LIMIT" default:"1200ms" validate:"gt=0"`

	RefreshInterval      time.Duration `envconfig:"REFRESH_INTERVAL" default:"30m" validate:"gt=0"`
	NoticeTTL            time.Duration `envconfig:"NOTICE_TTL" default:"20s" validate:"gt=0"`
	CatalogCacheSize     int           `envconfig:"CATALOG_CACHE_SIZE" default:"256" validate:"gt=0"`
	CatalogRetryAttempts uint          `envconfig:"CATALOG_RETRY_ATTEMPTS" default:"1" validate:"gte=1"`

	Redis Redis `envconfig:"REDIS"`
	HTTP  HTTP  `envconfig:"HTTP"`
}

// Contract returns ContractAddress parsed.
func (c Config) Contract() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", validator.ErrValidation, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
