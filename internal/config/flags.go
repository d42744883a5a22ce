package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b/-base-url vault service API root URL
//	-request-timeout request timeout (e.g., "30s", "1m"; 0 disables)
//	-session-file access key file path
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var sessionFile string
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "b", "", "Vault service API root URL")
	flag.StringVar(&baseURL, "base-url", "", "Vault service API root URL (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m; 0 disables)")
	flag.StringVar(&sessionFile, "session-file", "", "Access key file path")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFilePath: logFile,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			KeyFilePath: sessionFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}
