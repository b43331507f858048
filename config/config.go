// Package config loads the optional YAML configuration carrying naming
// defaults per media kind and thumbnail settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// KindConfig holds the naming defaults for one media kind. Extensions,
// when set, is a fixed output suffix chain used verbatim instead of the
// file's own extension.
type KindConfig struct {
	Prefix     string   `yaml:"prefix"`
	Suffix     string   `yaml:"suffix,omitempty"`
	TimeFormat string   `yaml:"time_format,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// ThumbnailConfig controls the video post-rename thumbnail embedding.
type ThumbnailConfig struct {
	Skip  bool `yaml:"skip,omitempty"`
	Width int  `yaml:"width,omitempty"`
}

type Config struct {
	Image     KindConfig      `yaml:"image"`
	Video     KindConfig      `yaml:"video"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Image:     KindConfig{Prefix: "IMG_", TimeFormat: "%Y%m%d_%H%M%S"},
		Video:     KindConfig{Prefix: "VID_", TimeFormat: "%Y%m%d_%H%M%S"},
		Thumbnail: ThumbnailConfig{Width: 320},
	}
}

// LoadConfig reads and validates one YAML file, filling unset fields
// from the defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, ext := range append(append([]string{}, cfg.Image.Extensions...), cfg.Video.Extensions...) {
		if ext == "" || ext[0] != '.' {
			return nil, fmt.Errorf("%s: extension %q must start with a dot", path, ext)
		}
	}
	if cfg.Thumbnail.Width <= 0 {
		cfg.Thumbnail.Width = Default().Thumbnail.Width
	}
	if cfg.Image.TimeFormat == "" {
		cfg.Image.TimeFormat = Default().Image.TimeFormat
	}
	if cfg.Video.TimeFormat == "" {
		cfg.Video.TimeFormat = Default().Video.TimeFormat
	}
	return cfg, nil
}

// LoadConfigPrefer tries to load a config file using the following order:
//  1. the provided path if non-empty,
//  2. ./exifrename.yaml (current working directory),
//  3. the user config dir: $XDG_CONFIG_HOME/exifrename/config.yaml or
//     the platform equivalent (via os.UserConfigDir()).
//
// The first existing file is loaded; without one the defaults apply. An
// explicitly provided path that does not exist is an error.
func LoadConfigPrefer(preferred string) (*Config, error) {
	exists := func(p string) bool {
		if p == "" {
			return false
		}
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return true
		}
		return false
	}

	if preferred != "" {
		if !exists(preferred) {
			return nil, fmt.Errorf("config file %s not found", preferred)
		}
		return LoadConfig(preferred)
	}

	cur := "exifrename.yaml"
	if exists(cur) {
		return LoadConfig(cur)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "exifrename", "config.yaml")
		if exists(p) {
			return LoadConfig(p)
		}
	}

	return Default(), nil
}
