package cli

import (
	"fmt"

	"github.com/sdejongh/mmv/pkg/config"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or create the mmv configuration file.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if globalFlags.ConfigFile != "" {
				cfg, err = config.LoadFromFile(globalFlags.ConfigFile)
			} else {
				cfg, err = config.LoadDefault()
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Force: %t\n", cfg.Move.Force)
			fmt.Fprintf(w, "Collision Check: %s\n", cfg.Move.CollisionCheck)
			fmt.Fprintf(w, "Create Dirs: %t\n", cfg.Move.CreateDirs)
			fmt.Fprintf(w, "Output Format: %s\n", cfg.Output.Format)
			fmt.Fprintf(w, "Color: %t\n", cfg.Output.Color)
			fmt.Fprintf(w, "Progress: %t\n", cfg.Output.Progress)
			fmt.Fprintf(w, "Log Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(w, "Log Level: %s\n", cfg.Logging.Level)
			if cfg.Logging.File != "" {
				fmt.Fprintf(w, "Log File: %s\n", cfg.Logging.File)
			}

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := globalFlags.ConfigFile
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}

			if !overwrite {
				if _, err := config.LoadFromFile(path); err == nil {
					return fmt.Errorf("configuration file already exists: %s (use --force to replace it)", path)
				}
			}

			if err := config.SaveToFile(config.Default(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "force", "f", false, "replace an existing configuration file")

	return cmd
}
