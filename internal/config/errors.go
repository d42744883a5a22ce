package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when configuration
// groups are invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
