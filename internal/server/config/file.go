package config

import (
	"github.com/dmitrijs2005/qrscanner/internal/flagx"
	"github.com/dmitrijs2005/qrscanner/internal/timex"
)

// FileConfig is the config file DTO. CheckoutTTL uses timex.Duration so it
// can be given as "15m" or as integer nanoseconds.
type FileConfig struct {
	GRPCAddr        string         `json:"grpc_addr" yaml:"grpc_addr"`
	HTTPAddr        string         `json:"http_addr" yaml:"http_addr"`
	DatabaseDSN     string         `json:"database_dsn" yaml:"database_dsn"`
	TokenSecret     string         `json:"token_secret" yaml:"token_secret"`
	CheckoutBaseURL string         `json:"checkout_base_url" yaml:"checkout_base_url"`
	CheckoutTTL     timex.Duration `json:"checkout_ttl" yaml:"checkout_ttl"`
	RedisURL        string         `json:"redis_url" yaml:"redis_url"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	LogFormat       string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays Config with the file given by -c or -config. Keys
// missing from the file leave cfg unchanged. Errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeConfigFile(path, &fc); err != nil {
		panic(err)
	}

	set(&cfg.GRPCAddr, fc.GRPCAddr)
	set(&cfg.HTTPAddr, fc.HTTPAddr)
	set(&cfg.DatabaseDSN, fc.DatabaseDSN)
	set(&cfg.TokenSecret, fc.TokenSecret)
	set(&cfg.CheckoutBaseURL, fc.CheckoutBaseURL)
	set(&cfg.RedisURL, fc.RedisURL)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
	if fc.CheckoutTTL.Duration > 0 {
		cfg.CheckoutTTL = fc.CheckoutTTL.Duration
	}
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
