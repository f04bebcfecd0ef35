// Init command: create configuration and data directories, then initialize
// the storage backend.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tablekit/viewsync/pkg/sqlite"
	"github.com/tablekit/viewsync/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize viewsync storage",
	Long:  "Create configuration and data directories, then initialize the storage backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("resolve config dir: %s", err))
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			return exitError(exitSysError, fmt.Sprintf("resolve data dir: %s", err))
		}

		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return exitError(exitSysError, fmt.Sprintf("create config directory: %s", err))
		}
		if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), dataDir); err != nil {
			return exitError(exitSysError, fmt.Sprintf("write config: %s", err))
		}

		// Initialize the data directory via Attach then Detach.
		backend := sqlite.NewBackend()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
		if err := backend.Attach(cfg); err != nil {
			return exitError(exitSysError, fmt.Sprintf("initialize backend: %s", err))
		}
		if err := backend.Detach(); err != nil {
			return exitError(exitSysError, fmt.Sprintf("detach backend: %s", err))
		}

		fmt.Printf("Initialized viewsync storage in %s\n", dataDir)
		return nil
	},
}

// writeConfigIfMissing writes config.yaml unless the file already exists.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	out, err := yaml.Marshal(configFile{Backend: types.BackendSQLite, DataDir: dataDir})
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
