package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-h string   checkout HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   purchase token HMAC secret
//	-u string   public checkout base URL
//	-t int      checkout validity, minutes
//	-r string   Redis URL for the update broker
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The checkout validity is accepted as an integer in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-d", "-s", "-u", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "address and port to run the gRPC server")
	fs.StringVar(&config.HTTPAddr, "h", config.HTTPAddr, "address and port to run the checkout API")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.TokenSecret, "s", config.TokenSecret, "purchase token secret")
	fs.StringVar(&config.CheckoutBaseURL, "u", config.CheckoutBaseURL, "public checkout base URL")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")

	checkoutTTL := fs.Int("t", int(config.CheckoutTTL.Minutes()), "checkout validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CheckoutTTL = time.Duration(*checkoutTTL) * time.Minute
}
