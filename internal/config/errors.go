package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidConsumerConfigs indicates invalid consumer service settings
	// (for example, missing base URL or bearer token).
	ErrInvalidConsumerConfigs = errors.New("invalid consumer configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative API key limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
