package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "SUPPLYNET_CONFIG"
	// ConfigFileName is the config file name looked up in the working directory.
	ConfigFileName = "supplynet.yaml"
	// ConfigDirName is the config directory name under XDG and /etc.
	ConfigDirName = "supplynet"
)

// FindConfigPath searches for a config file in priority order:
//  1. $SUPPLYNET_CONFIG
//  2. ./supplynet.yaml
//  3. $XDG_CONFIG_HOME/supplynet/config.yaml
//  4. ~/.config/supplynet/config.yaml
//  5. /etc/supplynet/config.yaml
//
// Returns "" if none exists.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	systemPath := filepath.Join("/etc", ConfigDirName, "config.yaml")
	if fileExists(systemPath) {
		return systemPath
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
