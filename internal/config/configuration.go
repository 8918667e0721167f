package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Janitor  JanitorConfig  `yaml:"janitor"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type JanitorConfig struct {
	Schedule  string        `yaml:"schedule"`
	Retention time.Duration `yaml:"retention"`
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Database: DatabaseConfig{Driver: "sqlite", Path: "boxed.db"},
		Log:      LogConfig{Level: "info", Format: "text", Output: "stderr", LogPath: "./logs"},
		Janitor:  JanitorConfig{Schedule: "@daily", Retention: 30 * 24 * time.Hour},
	}
}

// LoadConfiguration reads a YAML file on top of the defaults.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	config := DefaultConfiguration()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", configurationFilePath, err)
	}
	switch config.Database.Driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}
	return config, nil
}
