package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"compositor/internal/logging"
)

// drmMonitor listens for DRM change events (monitor hotplug, mode changes)
// and asks the session to reload its configuration.
type drmMonitor struct {
	logger  *slog.Logger
	trigger func(reason string)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

func newDRMMonitor(logger *slog.Logger, trigger func(reason string)) *drmMonitor {
	return &drmMonitor{
		logger:  logging.NewComponentLogger(logger, "drm-monitor"),
		trigger: trigger,
	}
}

// Start connects to the kernel uevent socket. A connection failure is
// logged and leaves the monitor stopped; SIGUSR1 still triggers reloads.
func (m *drmMonitor) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		logging.WarnWithContext(m.logger, "failed to connect to netlink socket; display changes will not reload configuration",
			"netlink_connect_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "send SIGUSR1 to reload after changing displays"),
			logging.String(logging.FieldImpact, "automatic reload on hotplug unavailable"),
		)
		return nil
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, conn, quit)

	m.logger.Debug("drm monitor started", logging.String(logging.FieldEventType, "drm_monitor_started"))
	return nil
}

// Stop shuts down the monitor. Safe on a nil or stopped monitor.
func (m *drmMonitor) Stop() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false
}

// Running reports whether the monitor is active.
func (m *drmMonitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *drmMonitor) monitorLoop(ctx context.Context, conn *netlink.UEventConn, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, buildDRMMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(uevent)
		case err := <-errs:
			logging.WarnWithContext(m.logger, "netlink monitor error", "netlink_monitor_error",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
				logging.String(logging.FieldImpact, "display changes may not reload configuration"),
			)
		}
	}
}

// buildDRMMatcher matches SUBSYSTEM=drm with ACTION=change, which the kernel
// emits on connector hotplug.
func buildDRMMatcher() netlink.Matcher {
	action := "change"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "drm",
		},
	})
	return rules
}

func (m *drmMonitor) handleEvent(uevent netlink.UEvent) {
	reason := "drm " + string(uevent.Action)
	if uevent.Env["HOTPLUG"] == "1" {
		reason = "drm hotplug"
	}
	m.logger.Info("display change detected",
		logging.String(logging.FieldEventType, "drm_change"),
		logging.String("kobj", uevent.KObj),
		logging.String("reason", reason),
	)
	if m.trigger != nil {
		m.trigger(reason)
	}
}
