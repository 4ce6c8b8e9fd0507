//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package config provides the configuration of the clausemark command.
//
// The configuration is read from a YAML file. Command line flags override
// the values of the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-yaml"
	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/logger"
)

// Keys of the configuration file.
const (
	KeyLogLevel         = "log-level"
	KeyFrom             = "from"
	KeyTo               = "to"
	KeyLang             = "lang"
	KeyUnquote          = "unquote"
	KeyRemoveFormatting = "remove-formatting"
)

// DefaultFile is read, if no other file is given.
const DefaultFile = ".clausemark.yaml"

// TextCodeConfig marks an invalid configuration.
const TextCodeConfig = "CONFIG_INVALID"

// Config stores all configuration values.
type Config struct {
	LogLevel         string         `yaml:"log-level"`
	From             string         `yaml:"from"`
	To               string         `yaml:"to"` // comma separated list of formats
	Lang             string         `yaml:"lang"`
	Unquote          bool           `yaml:"unquote"`
	RemoveFormatting bool           `yaml:"remove-formatting"`
	Env              map[string]any `yaml:"env"` // values for formula evaluation
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		LogLevel: logger.InfoLevel.String(),
		From:     "markdown",
		To:       "html",
	}
}

// Parse reads a configuration from YAML data. Missing values keep their
// default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "parse configuration").
			WithTextCode(TextCodeConfig)
	}
	return cfg, nil
}

// ReadFile reads the configuration file. A missing file results in the
// default configuration.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Set overrides a configuration value given as text.
func (cfg *Config) Set(key, value string) error {
	switch key {
	case KeyLogLevel:
		cfg.LogLevel = value
	case KeyFrom:
		cfg.From = value
	case KeyTo:
		cfg.To = value
	case KeyLang:
		cfg.Lang = value
	case KeyUnquote, KeyRemoveFormatting:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryBadInput, fmt.Sprintf("value of %q", key)).
				WithTextCode(TextCodeConfig)
		}
		if key == KeyUnquote {
			cfg.Unquote = b
		} else {
			cfg.RemoveFormatting = b
		}
	default:
		return goerrors.New(fmt.Sprintf("unknown configuration key %q", key), goerrors.CategoryBadInput).
			WithTextCode(TextCodeConfig)
	}
	return nil
}

// Path returns the formats to convert to, in order.
func (cfg *Config) Path() []string {
	var result []string
	for _, f := range strings.Split(cfg.To, ",") {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}

// Level returns the log level.
func (cfg *Config) Level() logger.Level {
	if lv := logger.ParseLevel(cfg.LogLevel); lv.IsValid() {
		return lv
	}
	return logger.InfoLevel
}

// Validate checks the configuration. Format names must be one of the given
// names.
func (cfg *Config) Validate(formats []string) error {
	known := make([]any, len(formats))
	for i, f := range formats {
		known[i] = f
	}
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.LogLevel, validation.By(checkLevel)),
		validation.Field(&cfg.From, validation.Required, validation.In(known...)),
		validation.Field(&cfg.To, validation.Required, validation.By(func(any) error {
			for _, f := range cfg.Path() {
				if err := validation.Validate(f, validation.In(known...)); err != nil {
					return fmt.Errorf("format %q: %w", f, err)
				}
			}
			return nil
		})),
	)
	if err != nil {
		return goerrors.FromOzzoValidation(err, "invalid configuration").WithTextCode(TextCodeConfig)
	}
	return nil
}

func checkLevel(value any) error {
	s, _ := value.(string)
	if s == "" || logger.ParseLevel(s).IsValid() {
		return nil
	}
	return errors.New("unknown log level")
}
