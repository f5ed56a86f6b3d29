package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type structuredJSONConfig struct {
	App struct {
		SaveOnChange bool   `json:"save_on_change"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Engine string `json:"engine"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			SnapshotPath string `json:"snapshot_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SaveOnChange: jsonCfg.App.SaveOnChange,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Engine: jsonCfg.Storage.DB.Engine,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				SnapshotPath: jsonCfg.Storage.Files.SnapshotPath,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
