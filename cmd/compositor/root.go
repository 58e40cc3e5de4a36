package main

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "compositor [OPTION]...",
		Short:         "Compositing manager for X",
		SilenceUsage:  true,
		SilenceErrors: true,
		// The option catalog owns the whole command line, including -h and
		// --version.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompositor(cmd, args)
		},
	}

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
