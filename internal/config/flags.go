package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-engine snapshot storage engine: sqlite, postgres or file
//	-d database DSN (sqlite file path or postgres connection string)
//	-f JSON snapshot file path (used by the file engine)
//	-save-on-change write the snapshot after every mutating command
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var engine string
	var databaseDSN string
	var snapshotPath string
	var saveOnChange bool
	var jsonConfigPath string

	flag.StringVar(&engine, "engine", "", "Snapshot storage engine (sqlite|postgres|file)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&snapshotPath, "f", "", "JSON snapshot file path")
	flag.BoolVar(&saveOnChange, "save-on-change", false, "Save snapshot after every mutating command")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SaveOnChange: saveOnChange,
		},
		Storage: Storage{
			DB: DB{
				Engine: engine,
				DSN:    databaseDSN,
			},
			Files: Files{
				SnapshotPath: snapshotPath,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
