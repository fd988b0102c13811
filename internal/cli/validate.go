package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/mmv/pkg/config"
	"github.com/sdejongh/mmv/pkg/models"
	"github.com/spf13/pflag"
)

// validateMoveFlags validates the move command flags
func validateMoveFlags() error {
	if globalFlags.Quiet && globalFlags.Verbose {
		return fmt.Errorf("--quiet and --verbose cannot be used together")
	}

	validChecks := map[string]bool{
		string(models.CollisionPrepass): true,
		string(models.CollisionInline):  true,
	}
	if !validChecks[moveFlags.CollisionCheck] {
		return fmt.Errorf("invalid collision check: %s (valid: prepass, inline)", moveFlags.CollisionCheck)
	}

	validOutputs := map[string]bool{
		"human": true,
		"json":  true,
		"table": true,
	}
	if !validOutputs[moveFlags.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json, table)", moveFlags.Output)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[moveFlags.LogFormat] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", moveFlags.LogFormat)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[moveFlags.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", moveFlags.LogLevel)
	}

	return nil
}

// loadConfig loads the --config file, or returns the defaults. The default
// config path is only read by 'mmv config show' so that plain invocations
// do not depend on ambient state.
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.Default(), nil
}

// applyFlagsToConfig overrides config values with the flags set on the
// command line. Flags left at their default keep the config file's value.
func applyFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("force") {
		cfg.Move.Force = moveFlags.Force
	}
	if flags.Changed("collision-check") {
		cfg.Move.CollisionCheck = models.CollisionCheck(moveFlags.CollisionCheck)
	}
	if flags.Changed("no-create-dirs") {
		cfg.Move.CreateDirs = !moveFlags.NoCreateDirs
	}

	// Output
	if flags.Changed("output") {
		cfg.Output.Format = moveFlags.Output
	}
	if flags.Changed("progress") {
		cfg.Output.Progress = moveFlags.Progress
	}
	if moveFlags.NoColor {
		cfg.Output.Color = false
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Logging
	if flags.Changed("log-file") {
		cfg.Logging.File = moveFlags.LogFile
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = moveFlags.LogFormat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = moveFlags.LogLevel
	}
}

// createBatchOperation creates a batch operation from configuration
func createBatchOperation(cfg *config.Config, source, target string) (*models.BatchOperation, error) {
	operation := &models.BatchOperation{
		ID:             uuid.New().String(),
		SourcePattern:  source,
		TargetTemplate: target,
		Force:          cfg.Move.Force,
		DryRun:         moveFlags.DryRun,
		CollisionCheck: cfg.Move.CollisionCheck,
		CreateDirs:     cfg.Move.CreateDirs,
		CreatedAt:      time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}
