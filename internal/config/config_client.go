package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string shown on the About screen.
	Version string
	// LogFilePath is the JSON log file location.
	LogFilePath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the Vault Service API root used by the client.
	BaseURL string
	// RequestTimeout is the timeout for outbound client requests.
	// Zero means no timeout.
	RequestTimeout time.Duration
}

// ClientSession holds durable session storage settings.
type ClientSession struct {
	// KeyFilePath is the file the access key is persisted in.
	KeyFilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Session contains durable session storage settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:     cfg.App.Version,
			LogFilePath: cfg.App.LogFilePath,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			KeyFilePath: cfg.Session.KeyFilePath,
		},
	}

	return clientCfg, clientCfg.validate()
}
