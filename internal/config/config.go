package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/sorting"
)

type Config struct {
	PageSize      int    `koanf:"page_size"`      // tracks per page in library views
	DefaultSort   string `koanf:"default_sort"`   // initial library sort criterion
	PlaylistOrder string `koanf:"playlist_order"` // "name", "date_created", or "duration"
	DataDir       string `koanf:"data_dir"`       // overrides the default state location
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir != "" {
		cfg.DataDir = expandPath(cfg.DataDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/trackcrate/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "trackcrate", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetPageSize returns the page size with defaults applied.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 || c.PageSize > 100 {
		return 10
	}
	return c.PageSize
}

// GetDefaultSort returns the configured sort criterion, falling back to
// title order when unset or unknown.
func (c *Config) GetDefaultSort() sorting.Criterion {
	crit := sorting.Criterion(c.DefaultSort)
	if !crit.Valid() {
		return sorting.ByTitle
	}
	return crit
}

// GetPlaylistOrder returns the configured playlist listing order, falling
// back to name order when unset or unknown.
func (c *Config) GetPlaylistOrder() playlists.ListOrder {
	switch order := playlists.ListOrder(c.PlaylistOrder); order {
	case playlists.ByName, playlists.ByDateCreated, playlists.ByTotalLength:
		return order
	}
	return playlists.ByName
}
