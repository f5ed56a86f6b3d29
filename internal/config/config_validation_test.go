package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name: "sqlite with DSN",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{Engine: EngineSQLite, DSN: "addressbook.db"}},
			},
			wantErr: nil,
		},
		{
			name: "postgres with DSN",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{Engine: EnginePostgres, DSN: "postgres://localhost/abook"}},
			},
			wantErr: nil,
		},
		{
			name: "file with snapshot path",
			cfg: &StructuredConfig{
				Storage: Storage{
					DB:    DB{Engine: EngineFile},
					Files: Files{SnapshotPath: "addressbook.json"},
				},
			},
			wantErr: nil,
		},
		{
			name: "sqlite without DSN",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{Engine: EngineSQLite}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "postgres without DSN",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{Engine: EnginePostgres}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "file without snapshot path",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{Engine: EngineFile}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown engine",
			cfg: &StructuredConfig{
				Storage: Storage{DB: DB{Engine: "cassandra", DSN: "whatever"}},
			},
			wantErr: ErrUnknownStorageEngine,
		},
		{
			name:    "empty engine",
			cfg:     &StructuredConfig{},
			wantErr: ErrUnknownStorageEngine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
