package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"compositor/internal/argparse"
	"compositor/internal/logging"
	"compositor/internal/pipeline"
	"compositor/internal/session"
)

const programName = "compositor"

func runCompositor(cmd *cobra.Command, args []string) error {
	levelVar := new(slog.LevelVar)
	logger, err := logging.New(logging.Options{LevelVar: levelVar})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	opts := pipeline.Options{Logger: logger, LevelVar: levelVar}

	ctx := cmd.Context()
	result, err := pipeline.Run(ctx, args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch result.Action {
	case argparse.ActionVersion:
		_, err := fmt.Fprintln(out, version)
		return err
	case argparse.ActionHelp:
		return argparse.WriteUsage(out, programName)
	}

	settings := result.Settings
	if settings.LogPath != "" {
		logger, err = logging.New(logging.Options{
			Level:       logging.LevelName(levelVar.Level()),
			OutputPaths: []string{"stderr", settings.LogPath},
			LevelVar:    levelVar,
		})
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		opts.Logger = logger
	}

	if settings.PrintDiagnostics {
		return writeDiagnostics(out, result, shouldColorize(out))
	}

	sess, err := session.New(settings, args, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, unix.SIGTERM)
	defer stop()

	logger.Info("compositor running",
		logging.String(logging.FieldRunID, result.RunID),
		logging.String("backend", settings.Backend.String()),
	)
	return sess.Run(ctx)
}
