package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	out, err := LoadFs(afero.NewBasePathFs(afero.NewOsFs(), path))
	if err != nil {
		return nil, err
	}
	out.configDir = path
	return out, nil
}

// LoadFs loads the configuration from the root of configFs.
func LoadFs(configFs afero.Fs) (*Configuration, error) {
	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	out.configFs = configFs
	return &out, nil
}

// LoadOrDefault loads the configuration from the directory, falling back to
// the built-in defaults if there is none.
func LoadOrDefault(path string, logger *log.Logger) (*Configuration, error) {
	configuration, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("No configuration in %q, using defaults. Run init to create one.", path)
		return DefaultConfig(), nil
	}
	return configuration, err
}

// Initialize writes the default configuration to dir unless one already
// exists, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	configFs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	if err := InitializeFs(configFs, logger); err != nil {
		return nil, err
	}

	return Load(dir)
}

// InitializeFs writes the default configuration to the root of configFs
// unless one already exists.
func InitializeFs(configFs afero.Fs, logger *log.Logger) error {
	exists, err := afero.Exists(configFs, ConfigurationName)
	switch {
	case err != nil:
		return err
	case exists:
		logger.Printf("%s already exists, skipping", ConfigurationName)
		return nil
	}

	logger.Printf("Writing %s", ConfigurationName)
	return afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600)
}
