package config

import "time"

// Config holds runtime settings for the scanner CLI.
//
// Units: ConnectCheckInterval, FrameInterval and ScanTimeout are
// time.Duration values.
type Config struct {
	DatabasePath         string
	BillingEndpointAddr  string
	ConnectCheckInterval time.Duration

	// FrameDir is watched for incoming camera frames by the "scan" command.
	FrameDir      string
	FrameInterval time.Duration
	ScanTimeout   time.Duration

	LogLevel     string
	LogFormat    string
	SupportEmail string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3RootUser     string
	S3RootPassword string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "scans.db"
	c.BillingEndpointAddr = "127.0.0.1:50051"
	c.ConnectCheckInterval = 3 * time.Second
	c.FrameDir = "frames"
	c.FrameInterval = 500 * time.Millisecond
	c.ScanTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.SupportEmail = "support@qrscanner.example"
	c.S3Bucket = "qrscanner-backups"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
	c.S3RootUser = "minioadmin"
	c.S3RootPassword = "minioadmin"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
