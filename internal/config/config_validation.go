// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client-facing invariants live on
// [ClientConfig.validate].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate checks the client config view. Everything has a runtime default
// (base URL in the adapter, key file under the OS config dir), so only
// outright nonsense is rejected.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
