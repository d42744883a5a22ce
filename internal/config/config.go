// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// VaultDrop client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the remote Vault Service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds settings for the durable access-key storage.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown on the About screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFilePath is the path of the JSON log file. When empty a "logs"
	// file next to the executable is used.
	// Env: APP_LOG_FILE
	LogFilePath string `env:"LOG_FILE"`
}

// Adapter holds network settings for outbound calls to the Vault Service.
type Adapter struct {
	// BaseURL is the root URL of the Vault Service API
	// (e.g. "http://localhost/projectvault/api").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "30s", "1m"). Zero disables the timeout: a request that never
	// resolves leaves its control in the loading state, matching the
	// behavior of the original client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings for the durable client-side session storage.
type Session struct {
	// KeyFilePath is the file holding the persisted access key. When empty
	// a per-user default under the OS config directory is used.
	// Env: SESSION_KEY_FILE
	KeyFilePath string `env:"KEY_FILE"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources. Earlier sources take precedence; later sources
// only fill fields the earlier ones left unset:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
