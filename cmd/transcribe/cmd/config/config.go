package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"batch-transcriber/cmd/transcribe/cmd/options"
	appconfig "batch-transcriber/internal/app/config"
	apperrors "batch-transcriber/internal/app/errors"
)

var force bool

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	Cmd.AddCommand(initCmd)
}

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration as YAML.

Values are resolved in order: built-in defaults, the YAML file, then TRANSCRIBE_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appconfig.Resolve(options.ConfigPath)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return apperrors.Wrap(err, apperrors.KindConfig, "failed to marshal config to YAML")
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appconfig.DefaultConfigFile
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !force {
			return apperrors.Newf(apperrors.KindConfig, "%s already exists (use --force to overwrite)", path)
		}

		if err := appconfig.SaveBatchConfig(appconfig.DefaultBatchConfig(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}
