// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Yurii Karpenko

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Engine {
	case EngineSQLite, EnginePostgres:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case EngineFile:
		if cfg.Storage.Files.SnapshotPath == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageEngine, cfg.Storage.DB.Engine)
	}

	return nil
}
