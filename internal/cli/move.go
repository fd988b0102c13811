package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/mmv/pkg/batch"
	"github.com/sdejongh/mmv/pkg/config"
	"github.com/sdejongh/mmv/pkg/logging"
	"github.com/sdejongh/mmv/pkg/output"
	"github.com/sdejongh/mmv/pkg/pattern"
	"github.com/sdejongh/mmv/pkg/storage"
	"github.com/spf13/cobra"
)

// MoveFlags holds the flags of the move (root) command
type MoveFlags struct {
	Force          bool
	DryRun         bool
	CollisionCheck string
	NoCreateDirs   bool
	Output         string
	Progress       bool
	NoColor        bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var moveFlags MoveFlags

// NewRootCommand creates the mmv command. Running it with SOURCE and TARGET
// performs a batch move; config and version are subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mmv [flags] SOURCE TARGET",
		Short: "Move or rename files in batch using wildcard patterns",
		Long: `mmv moves every file matching SOURCE to the path built from TARGET.

Each '*' in SOURCE matches any run of characters within one path component.
The text matched by the n-th '*' replaces every '#n' in TARGET.

  mmv 'dir/*.txt' 'dir2/changed_#1.txt'
  mmv 'logs/*_*.log' 'archive/#2-#1.log'

Quote both arguments so the shell does not expand them.`,
		Args:          cobra.ExactArgs(2),
		RunE:          runMove,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&moveFlags.Force, "force", "f", false, "overwrite existing destination files")
	cmd.Flags().BoolVarP(&moveFlags.DryRun, "dry-run", "n", false, "print the planned moves without touching any file")
	cmd.Flags().StringVar(&moveFlags.CollisionCheck, "collision-check", "prepass",
		"when to check destinations for existing files: prepass (before any move), inline (before each move)")
	cmd.Flags().BoolVar(&moveFlags.NoCreateDirs, "no-create-dirs", false, "do not create the target's parent directory")
	cmd.Flags().StringVarP(&moveFlags.Output, "output", "o", "human", "output format: human, json, table")
	cmd.Flags().BoolVar(&moveFlags.Progress, "progress", false, "show a progress bar while moving (human output on a terminal)")
	cmd.Flags().BoolVar(&moveFlags.NoColor, "no-color", false, "disable colored output")

	// Logging flags
	cmd.Flags().StringVar(&moveFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&moveFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&moveFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	AddGlobalFlags(cmd)

	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateMoveFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	operation, err := createBatchOperation(cfg, args[0], args[1])
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	warnUnusedPlaceholders(cmd.ErrOrStderr(), cfg, operation.SourcePattern, operation.TargetTemplate)

	logger, err := createLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	backend := storage.NewLocal()
	defer backend.Close()

	executor := batch.NewExecutor(backend, createFormatter(cfg, stdout), logger, operation)
	executor.SetWriter(stdout)

	// Per-entry rename failures are reported by the formatter and do not
	// change the exit status. Only fatal conditions come back as errors.
	report, err := executor.Run(ctx)
	if err != nil {
		return err
	}
	if report.Status.ExitCode() != 0 {
		return fmt.Errorf("batch %s", report.Status)
	}
	return nil
}

// createFormatter selects the output formatter for the configuration
func createFormatter(cfg *config.Config, stdout io.Writer) output.Formatter {
	opts := output.Options{
		Color:   cfg.Output.Color && os.Getenv("NO_COLOR") == "" && output.IsTerminal(stdout),
		Verbose: globalFlags.Verbose,
		Quiet:   cfg.Output.Quiet,
	}

	if cfg.Output.Format == "human" && cfg.Output.Progress {
		return output.NewProgressFormatter(opts)
	}
	return output.New(cfg.Output.Format, opts)
}

// createLogger creates a logger based on configuration
func createLogger(cfg config.LoggingConfig) (logging.Logger, error) {
	// If no log file specified, return null logger
	if cfg.File == "" {
		return logging.NewNullLogger(), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.File,
		Format:     logging.ParseFormat(cfg.Format),
		Level:      logging.ParseLevel(cfg.Level),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}

// warnUnusedPlaceholders flags templates that reference captures the
// pattern cannot produce. Such placeholders are copied to the destination
// verbatim.
func warnUnusedPlaceholders(w io.Writer, cfg *config.Config, source, template string) {
	wildcards := pattern.CountWildcards(source)
	highest := pattern.MaxPlaceholder(template)
	if highest <= wildcards || cfg.Output.Format == "json" {
		return
	}
	fmt.Fprintf(w, "mmv: warning: %s has %d wildcard(s), %s will be kept as is\n",
		source, wildcards, pattern.Placeholder(highest))
}
