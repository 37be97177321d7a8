// Package config handles loading pizarra.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jmorales/pizarra/internal/paths"
)

// Config represents the pizarra.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Board   Board   `toml:"board"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Dir overrides the directory holding the key-value store.
	Dir string `toml:"dir"`

	// Key overrides the storage key for the board record.
	Key string `toml:"key"`
}

// Board contains board-related configuration.
type Board struct {
	// DefaultPriority is used when task creation omits a priority.
	DefaultPriority string `toml:"default-priority"`
}

// Load loads configuration from the working directory and the global config
// file. Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "pizarra.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, localCfg, globalMeta, localMeta)
	return merged, nil
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

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Dir = mergeString(localMeta.IsDefined("storage", "dir"), localCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.Storage.Key = mergeString(localMeta.IsDefined("storage", "key"), localCfg.Storage.Key, globalCfg.Storage.Key)
	merged.Board.DefaultPriority = mergeString(localMeta.IsDefined("board", "default-priority"), localCfg.Board.DefaultPriority, globalCfg.Board.DefaultPriority)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}
