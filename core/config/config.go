package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs  afero.Fs
	configDir string

	Prompt      string `json:"prompt" validate:"required"`
	HistoryFile string `json:"history_file"`
	DefaultPath string `json:"default_path" validate:"required"`
	WatchPath   bool   `json:"watch_path"`
	Color       string `json:"color" validate:"oneof=always auto never"`
	AppLog      string `json:"app_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewMemMapFs()
	}
	return c.configFs
}

// Dir returns the directory the configuration was loaded from, empty for
// the built-in defaults.
func (c *Configuration) Dir() string {
	return c.configDir
}

// HistoryPath returns the host path of the history file or "" if history
// isn't persisted.
func (c *Configuration) HistoryPath() string {
	return c.hostPath(c.HistoryFile)
}

func (c *Configuration) hostPath(name string) string {
	switch {
	case name == "":
		return ""
	case filepath.IsAbs(name), c.configDir == "":
		return name
	default:
		return filepath.Join(c.configDir, name)
	}
}

// OpenAppLog opens the application log in an append only state. It returns
// nil if no log file is configured.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	if c.AppLog == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.AppLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.AppLog, os.O_RDONLY, 0600)
}

// ShouldColor resolves the color setting, isTerminal decides "auto".
func (c *Configuration) ShouldColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
