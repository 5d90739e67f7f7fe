// Package config handles loading pantry.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kitchenbuddy/pantry/internal/paths"
)

// ProjectFileName is the per-directory config file.
const ProjectFileName = "pantry.toml"

// Config represents the pantry.toml configuration file.
type Config struct {
	Store    Store    `toml:"store"`
	Barcode  Barcode  `toml:"barcode"`
	Expiring Expiring `toml:"expiring"`
	Log      Log      `toml:"log"`
}

// Store selects where the ingredient collection is persisted.
type Store struct {
	// Backend is one of file, sqlite, or memory.
	Backend string `toml:"backend"`
	// DataDir overrides the default data directory.
	DataDir string `toml:"data-dir"`
}

// Barcode configures the product lookup service.
type Barcode struct {
	Endpoint string `toml:"endpoint"`
	// Timeout is a Go duration string such as "10s".
	Timeout string `toml:"timeout"`
}

// Expiring configures the attention view.
type Expiring struct {
	// Days is the default look-ahead horizon.
	Days int `toml:"days"`
}

// Log configures diagnostic logging.
type Log struct {
	Level string `toml:"level"`
}

// TimeoutDuration parses Barcode.Timeout. An empty value yields zero.
func (b Barcode) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse barcode timeout %q: %w", b.Timeout, err)
	}
	return d, nil
}

// Load loads configuration from projectDir and the global config file.
// Returns an empty config if no config files exist.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Backend = mergeString(projectMeta.IsDefined("store", "backend"), projectCfg.Store.Backend, globalCfg.Store.Backend)
	merged.Store.DataDir = mergeString(projectMeta.IsDefined("store", "data-dir"), projectCfg.Store.DataDir, globalCfg.Store.DataDir)
	merged.Barcode.Endpoint = mergeString(projectMeta.IsDefined("barcode", "endpoint"), projectCfg.Barcode.Endpoint, globalCfg.Barcode.Endpoint)
	merged.Barcode.Timeout = mergeString(projectMeta.IsDefined("barcode", "timeout"), projectCfg.Barcode.Timeout, globalCfg.Barcode.Timeout)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)

	merged.Expiring.Days = globalCfg.Expiring.Days
	if projectMeta.IsDefined("expiring", "days") {
		merged.Expiring.Days = projectCfg.Expiring.Days
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
