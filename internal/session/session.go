package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"compositor/internal/argparse"
	"compositor/internal/config"
	"compositor/internal/logging"
	"compositor/internal/pipeline"
)

// ErrNotResolved is returned when a reload produces an early-exit action
// instead of settings.
var ErrNotResolved = errors.New("arguments did not resolve to settings")

// Session owns the resolved settings for the life of the process and
// rebuilds them on request.
type Session struct {
	args    []string
	opts    pipeline.Options
	logger  *slog.Logger
	current atomic.Pointer[config.Settings]

	// reloadMu serializes reloads; Current never blocks on it.
	reloadMu sync.Mutex
	reloads  chan string
}

// New creates a session around settings already produced by a pipeline run.
// args are kept so every reload resolves the same command line again.
func New(initial *config.Settings, args []string, opts pipeline.Options) (*Session, error) {
	if initial == nil {
		return nil, errors.New("session requires resolved settings")
	}
	s := &Session{
		args:    slices.Clone(args),
		opts:    opts,
		logger:  logging.NewComponentLogger(opts.Logger, "session"),
		reloads: make(chan string, 1),
	}
	s.current.Store(initial)
	return s, nil
}

// Current returns the active settings. The returned value must not be
// modified.
func (s *Session) Current() *config.Settings {
	return s.current.Load()
}

// Reload re-runs the whole pipeline on a fresh Settings value. On failure
// the previous settings stay active and the error is returned.
func (s *Session) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	result, err := pipeline.Run(ctx, s.args, s.opts)
	if err != nil {
		logging.WarnWithContext(s.logger, "configuration reload failed; keeping previous settings", "reload_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix the configuration file and reload again"),
			logging.String(logging.FieldImpact, "previous settings remain active"),
		)
		return err
	}
	if result.Action != argparse.ActionContinue || result.Settings == nil {
		return fmt.Errorf("%w: %s", ErrNotResolved, result.Action)
	}

	s.current.Store(result.Settings)
	s.logger.Info("configuration reloaded",
		logging.String(logging.FieldRunID, result.RunID),
		logging.String(logging.FieldConfigPath, result.ConfigPath),
	)
	return nil
}

// RequestReload queues a reload. Requests arriving while one is pending
// are coalesced.
func (s *Session) RequestReload(reason string) {
	select {
	case s.reloads <- reason:
	default:
		s.logger.Debug("reload already pending", logging.String("reason", reason))
	}
}

// Run holds the pid file named by the active settings, watches for SIGUSR1
// and display changes, and reloads until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	settings := s.Current()
	if settings.WritePIDPath != "" {
		pid, err := AcquirePIDFile(settings.WritePIDPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := pid.Release(); err != nil {
				s.logger.Warn("release pid file", logging.Error(err))
			}
		}()
		s.logger.Debug("pid file written", logging.String("path", pid.Path()))
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGUSR1, unix.SIGHUP)
	defer signal.Stop(signals)

	monitor := newDRMMonitor(s.opts.Logger, s.RequestReload)
	if err := monitor.Start(ctx); err != nil {
		return err
	}
	defer monitor.Stop()
	s.logger.Debug("reload triggers armed",
		logging.Bool("drm_monitor", monitor.Running()),
		logging.String("signals", "SIGUSR1,SIGHUP"),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-signals:
			s.RequestReload(sig.String())
		case reason := <-s.reloads:
			s.logger.Debug("reload requested", logging.String("reason", reason))
			_ = s.Reload(ctx)
		}
	}
}
