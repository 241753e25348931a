// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AppForge Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and normalizes
// optional fields to their defaults.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Consumer.APIPrefix == "" || cfg.Consumer.Token == "" {
		return ErrInvalidConsumerConfigs
	}

	if cfg.App.MaxAPIKeys < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.MaxAPIKeys == 0 {
		cfg.App.MaxAPIKeys = DefaultMaxAPIKeys
	}

	if cfg.Consumer.RequestTimeout <= 0 {
		cfg.Consumer.RequestTimeout = DefaultConsumerTimeout
	}

	return nil
}
