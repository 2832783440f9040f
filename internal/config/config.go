// Package config loads lrctoolbox settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/lrctoolbox/internal/logger"
	"github.com/llehouerou/lrctoolbox/internal/lrclib"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
)

const (
	appName        = "lrctoolbox"
	configFileName = "config.toml"
	localFileName  = "lrctoolbox.toml"
)

type Config struct {
	Save     SaveConfig     `koanf:"save"`
	Metadata MetadataConfig `koanf:"metadata"`
	Lrclib   LrclibConfig   `koanf:"lrclib"`
	Log      LogConfig      `koanf:"log"`
}

// SaveConfig holds the defaults used when writing LRC files.
type SaveConfig struct {
	Overwrite       bool  `koanf:"overwrite"`
	WriteMetadata   *bool `koanf:"write_metadata"` // default: true
	CollapseRepeats bool  `koanf:"collapse_repeats"`
}

// MetadataConfig holds tags added to every saved file.
// Empty values keep the built-in module identity.
type MetadataConfig struct {
	Author  string `koanf:"author"`
	ReName  string `koanf:"re_name"`
	Version string `koanf:"version"`
}

// LrclibConfig holds lyrics fetching settings.
type LrclibConfig struct {
	URL            string `koanf:"url"`             // default: lrclib.DefaultBaseURL
	TimeoutSeconds int    `koanf:"timeout_seconds"` // default: 10
	Cache          *bool  `koanf:"cache"`           // default: true
	CachePath      string `koanf:"cache_path"`      // default: XDG cache dir
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: warn)
	File  string `koanf:"file"`  // rotated JSON log, disabled when empty
}

// Load reads the configuration. An explicit path must exist and is the only
// file read; otherwise the XDG and working directory files are merged, the
// last one winning.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		path = expandPath(path)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, fmt.Errorf("%s: %w", p, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Lrclib.URL = strings.TrimSuffix(cfg.Lrclib.URL, "/")
	cfg.Lrclib.CachePath = expandPath(cfg.Lrclib.CachePath)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/lrctoolbox/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./lrctoolbox.toml (pwd, highest priority)
		localFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SaveOptions returns the save defaults with the configured metadata.
func (c *Config) SaveOptions() lyrics.SaveOptions {
	opts := lyrics.SaveOptions{
		Overwrite:       c.Save.Overwrite,
		WriteMetadata:   c.Save.WriteMetadata == nil || *c.Save.WriteMetadata,
		CollapseRepeats: c.Save.CollapseRepeats,
	}

	m := c.Metadata
	if m.Author != "" || m.ReName != "" || m.Version != "" {
		additional := lyrics.DefaultMetadata()
		additional.Merge(lyrics.Metadata{Author: m.Author, ReName: m.ReName, Version: m.Version})
		opts.AdditionalMetadata = &additional
	}
	return opts
}

// LrclibURL returns the API base URL with the default applied.
func (c *Config) LrclibURL() string {
	if c.Lrclib.URL == "" {
		return lrclib.DefaultBaseURL
	}
	return c.Lrclib.URL
}

// LrclibTimeout returns the request timeout with the default applied.
func (c *Config) LrclibTimeout() time.Duration {
	if c.Lrclib.TimeoutSeconds <= 0 {
		return lrclib.DefaultTimeout
	}
	return time.Duration(c.Lrclib.TimeoutSeconds) * time.Second
}

// CacheEnabled reports whether fetched lyrics are cached.
func (c *Config) CacheEnabled() bool {
	return c.Lrclib.Cache == nil || *c.Lrclib.Cache
}

// Logger returns the logger settings. Console output goes to stderr.
func (c *Config) Logger() logger.Config {
	level := logger.Level(strings.ToLower(c.Log.Level))
	if level == "" {
		level = logger.WarnLevel
	}
	return logger.Config{
		Level:      level,
		OutputPath: c.Log.File,
	}
}
