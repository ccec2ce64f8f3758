// Package config loads and validates the shell's YAML configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the expected file name.
const ConfigurationName = "config.yaml"

type Configuration struct {
	// Hostname is shown in the prompt's \h expansion.
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	// Motd is printed once when the shell starts.
	Motd string `json:"motd"`
	// Prompt is the prompt template; \h and \w are expanded.
	Prompt string `json:"prompt"`
	// StorageDir is the host directory backing the shell filesystem.
	// Empty means a fresh in-memory filesystem per run.
	StorageDir string `json:"storage_dir"`
	// StorageQuotaBytes caps stored file bytes; 0 means unlimited.
	StorageQuotaBytes int64 `json:"storage_quota_bytes" validate:"gte=0"`
	// HistoryFile is the host path for console line history.
	HistoryFile string `json:"history_file"`
	// LogFile is the host path for the JSON-lines session event log.
	LogFile string `json:"log_file"`
	// Aliases seeds the session's alias table.
	Aliases map[string]string `json:"aliases"`
	// StartupScript is a shell-filesystem path run before the first
	// prompt.
	StartupScript string `json:"startup_script"`
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

// Default returns the embedded default configuration.
func Default() (*Configuration, error) {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Load reads and validates a configuration file.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// WriteDefault writes the embedded default configuration to path.
func WriteDefault(fs afero.Fs, path string) error {
	return afero.WriteFile(fs, path, defaultConfigData, 0644)
}
