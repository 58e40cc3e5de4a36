package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"compositor/internal/config"
	"compositor/internal/logging"
	"compositor/internal/pipeline"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := writeSampleConfig(targetPath, overwrite)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// writeSampleConfig writes the embedded sample to pathFlag, or to the
// per-user default when pathFlag is blank, and returns the path written.
func writeSampleConfig(pathFlag string, overwrite bool) (string, error) {
	var (
		target string
		err    error
	)
	if strings.TrimSpace(pathFlag) == "" {
		target, err = config.DefaultConfigPath()
	} else {
		target, err = config.ExpandPath(pathFlag)
	}
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	if _, statErr := os.Stat(target); statErr == nil && !overwrite {
		return "", fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return "", fmt.Errorf("check config path: %w", statErr)
	}

	if err := config.CreateSample(target); err != nil {
		return "", err
	}
	return target, nil
}

// newConfigValidateCommand resolves the same options the compositor would
// accept and reports the outcome without starting a session.
func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "validate [OPTION]...",
		Short:              "Resolve options and the configuration file, then report the result",
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pipeline.Run(cmd.Context(), args, pipeline.Options{Logger: logging.NewNop()})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if result.Settings == nil {
				fmt.Fprintf(out, "Nothing to validate (%s requested)\n", result.Action)
				return nil
			}

			colorize := shouldColorize(out)
			fmt.Fprintln(out, configStatusLine(result, colorize))
			advisories := result.Settings.Advisories()
			for _, advisory := range advisories {
				fmt.Fprintln(out, renderStatusLine("advisory", statusWarn, advisory.Message, colorize))
			}
			if len(advisories) == 0 {
				fmt.Fprintln(out, renderStatusLine("settings", statusOK, "no advisories", colorize))
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
