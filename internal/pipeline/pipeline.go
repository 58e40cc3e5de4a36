package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"compositor/internal/argparse"
	"compositor/internal/config"
	"compositor/internal/logging"
)

// Options configures one pipeline run.
type Options struct {
	Logger *slog.Logger
	// LevelVar is handed to the resolver so --log-level takes effect
	// immediately.
	LevelVar *slog.LevelVar
	// Load is the Config Loader. Nil selects config.LoadFile.
	Load config.LoadFunc
	// Conditions overrides the condition-list sink; nil keeps the lists on
	// the returned Settings.
	Conditions config.ConditionSink
}

// Result is the outcome of a run. Settings is nil unless Action is
// argparse.ActionContinue.
type Result struct {
	RunID        string
	Action       argparse.Action
	Settings     *config.Settings
	ConfigPath   string
	ConfigExists bool
}

// Run executes bootstrap, load, resolve and normalize in that order against
// a freshly defaulted Settings value. A failure at any stage returns no
// settings. Running it twice over the same arguments and file yields equal
// results apart from RunID.
func Run(ctx context.Context, args []string, opts Options) (Result, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	base := logging.WithContext(ctx, opts.Logger)
	logger := logging.NewComponentLogger(base, "pipeline")

	result := Result{RunID: runID}

	boot, err := argparse.ScanBootstrap(args, base)
	if err != nil {
		return result, err
	}
	result.Action = boot.Action
	if boot.Action != argparse.ActionContinue {
		logger.Debug("bootstrap requested early exit", logging.String("action", boot.Action.String()))
		return result, nil
	}

	load := opts.Load
	if load == nil {
		load = config.LoadFile
	}

	settings := config.Default()
	var pins config.Pins
	resolved, exists, err := load(boot.ConfigFile, &settings, &pins)
	if err != nil {
		return result, fmt.Errorf("load config: %w", err)
	}
	result.ConfigPath = resolved
	result.ConfigExists = exists
	settings.ShowAllXErrors = boot.ShowAllXErrors
	if exists {
		logger.Debug("configuration file loaded", logging.String(logging.FieldConfigPath, resolved))
	} else {
		logger.Debug("no configuration file, using defaults", logging.String(logging.FieldConfigPath, resolved))
	}

	// The file's level applies before flags so --log-level still wins.
	if opts.LevelVar != nil {
		if level, ok := logging.ParseLevel(settings.LogLevel); ok {
			opts.LevelVar.Set(level)
		}
	}

	resolver := argparse.Resolver{
		Logger:     base,
		LevelVar:   opts.LevelVar,
		Conditions: opts.Conditions,
	}
	if err := resolver.Resolve(&settings, &pins, args); err != nil {
		return result, err
	}

	settings.Normalize(&pins, base)

	result.Settings = &settings
	logger.Info("configuration resolved",
		logging.String("backend", settings.Backend.String()),
		logging.String("vsync", settings.VSync.String()),
		logging.Bool("config_file", exists),
	)
	return result, nil
}
