package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded, if present, before the environment is read. Variables
// already set in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays Config with QRS_* environment variables. An invalid
// QRS_CHECKOUT_TTL panics.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	lookup(&cfg.GRPCAddr, "QRS_GRPC_ADDR")
	lookup(&cfg.HTTPAddr, "QRS_HTTP_ADDR")
	lookup(&cfg.DatabaseDSN, "QRS_DATABASE_DSN")
	lookup(&cfg.TokenSecret, "QRS_TOKEN_SECRET")
	lookup(&cfg.CheckoutBaseURL, "QRS_CHECKOUT_BASE_URL")
	lookup(&cfg.RedisURL, "QRS_REDIS_URL")
	lookup(&cfg.LogLevel, "QRS_LOG_LEVEL")
	lookup(&cfg.LogFormat, "QRS_LOG_FORMAT")

	if v, ok := os.LookupEnv("QRS_CHECKOUT_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.CheckoutTTL = d
	}
}

func lookup(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
