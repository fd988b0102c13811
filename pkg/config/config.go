package config

import (
	"github.com/sdejongh/mmv/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Move    MoveConfig    `yaml:"move"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MoveConfig holds batch move settings
type MoveConfig struct {
	Force          bool                  `yaml:"force"`
	CollisionCheck models.CollisionCheck `yaml:"collision_check"` // "prepass" or "inline"
	CreateDirs     bool                  `yaml:"create_dirs"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human", "json" or "table"
	Color    bool   `yaml:"color"`    // Colorize human output
	Progress bool   `yaml:"progress"` // Show a progress bar while moving
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = no logging)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Move: MoveConfig{
			Force:          false,
			CollisionCheck: models.CollisionPrepass,
			CreateDirs:     true,
		},
		Output: OutputConfig{
			Format:   "human",
			Color:    true,
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Move.CollisionCheck {
	case models.CollisionPrepass, models.CollisionInline:
	default:
		return &models.ValidationError{
			Field:   "move.collision_check",
			Message: "must be 'prepass' or 'inline'",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true, "table": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human', 'json' or 'table'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
