package config

import (
	"time"
)

// ClientConfig points the query CLI at a chain and a contract.
type ClientConfig struct {
	LcdURL          string   `validate:"required,url"`
	ContractAddress string   `validate:"required"`
	RequestTimeout  Duration `validate:"gt=0"`
	// zerolog level name, empty means info
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		LcdURL:          "http://localhost:1317",
		ContractAddress: "core1lottery",
		RequestTimeout:  Duration(10 * time.Second),
		LogLevel:        "info",
	}
}

func NewClientConfig(dataDir *string) *Config[ClientConfig] {
	return New(DefaultClientConfig(), dataDir)
}
