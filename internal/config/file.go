package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/ghlookup/internal/errors"
)

// FileConfig is the on-disk YAML form of the configuration. Pointer fields
// distinguish "absent" from the zero value.
//
//	base_url: https://api.github.com
//	token: ghp_...
//	rate: 2
//	burst: 4
//	timeout: 30s
//	log_level: debug
type FileConfig struct {
	BaseURL           *string  `yaml:"base_url"`
	Token             *string  `yaml:"token"`
	UserAgent         *string  `yaml:"user_agent"`
	RequestsPerSecond *float64 `yaml:"rate"`
	Burst             *int     `yaml:"burst"`
	Timeout           *string  `yaml:"timeout"`
	Concurrency       *int     `yaml:"concurrency"`
	JSON              *bool    `yaml:"json"`
	NoTUI             *bool    `yaml:"no_tui"`
	MetricsAddr       *string  `yaml:"metrics_addr"`
	LogLevel          *string  `yaml:"log_level"`
	LogFile           *string  `yaml:"log_file"`
	NoColor           *bool    `yaml:"no_color"`
	Theme             *string  `yaml:"theme"`

	timeout time.Duration
}

// LoadFile reads and decodes a YAML configuration file. Unknown keys are
// rejected.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("reading config file: %v", err)
	}
	return ParseFile(data)
}

// ParseFile decodes YAML configuration data.
func ParseFile(data []byte) (FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, apperrors.NewConfigError("parsing config file: %v", err)
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return FileConfig{}, apperrors.NewConfigError("config file: invalid timeout %q", *fc.Timeout)
		}
		fc.timeout = d
	}
	return fc, nil
}

// applyTo copies values present in the file into cfg, skipping fields whose
// flag was set explicitly.
func (fc FileConfig) applyTo(cfg *AppConfig, fs *flag.FlagSet) {
	setString := func(dst *string, src *string, flags ...string) {
		if src != nil && !isFlagSetAny(fs, flags...) {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool, flags ...string) {
		if src != nil && !isFlagSetAny(fs, flags...) {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int, flags ...string) {
		if src != nil && !isFlagSetAny(fs, flags...) {
			*dst = *src
		}
	}

	setString(&cfg.BaseURL, fc.BaseURL, "base-url")
	setString(&cfg.Token, fc.Token, "token")
	setString(&cfg.UserAgent, fc.UserAgent, "user-agent")
	if fc.RequestsPerSecond != nil && !isFlagSet(fs, "rate") {
		cfg.RequestsPerSecond = *fc.RequestsPerSecond
	}
	setInt(&cfg.Burst, fc.Burst, "burst")
	if fc.Timeout != nil && !isFlagSet(fs, "timeout") {
		cfg.Timeout = fc.timeout
	}
	setInt(&cfg.Concurrency, fc.Concurrency, "concurrency")
	setBool(&cfg.JSON, fc.JSON, "json")
	setBool(&cfg.NoTUI, fc.NoTUI, "no-tui")
	setString(&cfg.MetricsAddr, fc.MetricsAddr, "metrics-addr")
	setString(&cfg.LogLevel, fc.LogLevel, "log-level")
	setString(&cfg.LogFile, fc.LogFile, "log-file")
	setBool(&cfg.NoColor, fc.NoColor, "no-color")
	setString(&cfg.Theme, fc.Theme, "theme")
}
