// Package config loads runtime configuration for the scanner CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "database_path": "scans.db",
//	  "billing_endpoint_addr": "127.0.0.1:50051",
//	  "connect_check_interval": "3s",
//	  "frame_dir": "frames",
//	  "frame_interval": "500ms",
//	  "scan_timeout": "30s",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "backup_s3_bucket": "qrscanner-backups"
//	}
package config
