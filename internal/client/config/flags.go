package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/qrscanner/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the billing service
//	-d string   path of the SQLite database
//	-f string   directory watched for camera frames
//	-i int      connection check interval in seconds
//	-t int      scan timeout in seconds
//	-l string   log level (debug, info, warn, error)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-f", "-i", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BillingEndpointAddr, "a", cfg.BillingEndpointAddr, "address and port of the billing service")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the scan database")
	fs.StringVar(&cfg.FrameDir, "f", cfg.FrameDir, "directory watched for camera frames")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	checkInterval := fs.Int("i", int(cfg.ConnectCheckInterval.Seconds()), "connection check interval (in seconds)")
	scanTimeout := fs.Int("t", int(cfg.ScanTimeout.Seconds()), "scan timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ConnectCheckInterval = time.Duration(*checkInterval) * time.Second
	cfg.ScanTimeout = time.Duration(*scanTimeout) * time.Second
}
