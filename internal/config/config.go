// Package config loads lvtext settings from defaults, an optional YAML or
// TOML file, and LVTEXT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtext/rle"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "LVTEXT_"

// ErrUnsupportedFormat indicates a config file extension other than
// .yaml, .yml or .toml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config is the full set of tunables.
type Config struct {
	Log    Log    `yaml:"log" toml:"log"`
	Batch  Batch  `yaml:"batch" toml:"batch"`
	RLE    RLE    `yaml:"rle" toml:"rle"`
	Finder Finder `yaml:"finder" toml:"finder"`
}

// Log configures internal/logger.
type Log struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `yaml:"format" toml:"format" validate:"oneof=json console"`
}

// Batch configures the batch runner.
type Batch struct {
	Workers int    `yaml:"workers" toml:"workers" validate:"gte=1,lte=256"`
	Output  string `yaml:"output" toml:"output" validate:"oneof=json yaml"`
}

// RLE configures the decoder.
type RLE struct {
	MaxDecodedLen int `yaml:"max_decoded_len" toml:"max_decoded_len" validate:"gte=1"`
}

// Finder configures the frequent-substring search.
type Finder struct {
	Strategy string `yaml:"strategy" toml:"strategy" validate:"oneof=partition bruteforce"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "console"},
		Batch:  Batch{Workers: 4, Output: "json"},
		RLE:    RLE{MaxDecodedLen: rle.DefaultMaxDecodedLen},
		Finder: Finder{Strategy: "partition"},
	}
}

// Load resolves the configuration. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Unmarshal decodes data according to the extension of path.
// Shared with the batch job loader.
func Unmarshal(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Unmarshal(path, data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(string) (string, bool)

// applyEnv overrides cfg from LVTEXT_* variables. Blank values are ignored.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	getInt := func(key string, dst *int) error {
		v, ok := get(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
		}
		*dst = n
		return nil
	}

	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v, ok := get("BATCH_OUTPUT"); ok {
		cfg.Batch.Output = strings.ToLower(v)
	}
	if v, ok := get("FINDER_STRATEGY"); ok {
		cfg.Finder.Strategy = strings.ToLower(v)
	}
	if err := getInt("BATCH_WORKERS", &cfg.Batch.Workers); err != nil {
		return err
	}
	return getInt("RLE_MAX_DECODED_LEN", &cfg.RLE.MaxDecodedLen)
}
