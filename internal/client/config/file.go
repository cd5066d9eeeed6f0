package config

import (
	"github.com/dmitrijs2005/qrscanner/internal/flagx"
	"github.com/dmitrijs2005/qrscanner/internal/timex"
)

// FileConfig is a DTO used exclusively for config file decoding. Intervals
// use timex.Duration so they can be written as strings like "3s" or as
// integer nanoseconds.
type FileConfig struct {
	DatabasePath         string         `json:"database_path" yaml:"database_path"`
	BillingEndpointAddr  string         `json:"billing_endpoint_addr" yaml:"billing_endpoint_addr"`
	ConnectCheckInterval timex.Duration `json:"connect_check_interval" yaml:"connect_check_interval"`
	FrameDir             string         `json:"frame_dir" yaml:"frame_dir"`
	FrameInterval        timex.Duration `json:"frame_interval" yaml:"frame_interval"`
	ScanTimeout          timex.Duration `json:"scan_timeout" yaml:"scan_timeout"`
	LogLevel             string         `json:"log_level" yaml:"log_level"`
	LogFormat            string         `json:"log_format" yaml:"log_format"`
	SupportEmail         string         `json:"support_email" yaml:"support_email"`
	BackupS3Bucket       string         `json:"backup_s3_bucket" yaml:"backup_s3_bucket"`
	BackupS3Region       string         `json:"backup_s3_region" yaml:"backup_s3_region"`
	BackupS3Endpoint     string         `json:"backup_s3_endpoint" yaml:"backup_s3_endpoint"`
	BackupS3User         string         `json:"backup_s3_user" yaml:"backup_s3_user"`
	BackupS3Password     string         `json:"backup_s3_password" yaml:"backup_s3_password"`
}

// parseFile overlays Config with values loaded from the file given by -c or
// -config. Only keys present in the file change cfg. Read or decode errors
// panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeConfigFile(path, &fc); err != nil {
		panic(err)
	}

	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.BillingEndpointAddr, fc.BillingEndpointAddr)
	setString(&cfg.FrameDir, fc.FrameDir)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.SupportEmail, fc.SupportEmail)
	setString(&cfg.S3Bucket, fc.BackupS3Bucket)
	setString(&cfg.S3Region, fc.BackupS3Region)
	setString(&cfg.S3BaseEndpoint, fc.BackupS3Endpoint)
	setString(&cfg.S3RootUser, fc.BackupS3User)
	setString(&cfg.S3RootPassword, fc.BackupS3Password)

	if fc.ConnectCheckInterval.Duration > 0 {
		cfg.ConnectCheckInterval = fc.ConnectCheckInterval.Duration
	}
	if fc.FrameInterval.Duration > 0 {
		cfg.FrameInterval = fc.FrameInterval.Duration
	}
	if fc.ScanTimeout.Duration > 0 {
		cfg.ScanTimeout = fc.ScanTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
