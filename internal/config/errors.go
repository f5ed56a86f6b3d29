package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownStorageEngine indicates that Storage.DB.Engine is not one
	// of the supported values ("sqlite", "postgres", "file").
	ErrUnknownStorageEngine = errors.New("unknown storage engine")

	// ErrInvalidStorageConfigs indicates invalid storage settings for the
	// selected engine (for example, an empty DSN or snapshot path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
