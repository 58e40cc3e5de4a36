package session

import (
	"context"
	"testing"

	"github.com/pilebones/go-udev/netlink"

	"compositor/internal/logging"
)

func TestDRMMonitorNilSafe(t *testing.T) {
	t.Run("nil monitor Start", func(t *testing.T) {
		var m *drmMonitor
		if err := m.Start(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("nil monitor Stop", func(t *testing.T) {
		var m *drmMonitor
		m.Stop()
	})

	t.Run("nil monitor Running", func(t *testing.T) {
		var m *drmMonitor
		if m.Running() {
			t.Fatal("expected false for nil monitor")
		}
	})

	t.Run("stop before start", func(t *testing.T) {
		m := newDRMMonitor(logging.NewNop(), nil)
		m.Stop()
		if m.Running() {
			t.Fatal("expected monitor to be stopped")
		}
	})
}

func TestBuildDRMMatcher(t *testing.T) {
	matcher := buildDRMMatcher()

	tests := []struct {
		name  string
		event netlink.UEvent
		want  bool
	}{
		{
			name: "drm change",
			event: netlink.UEvent{
				Action: netlink.CHANGE,
				Env:    map[string]string{"SUBSYSTEM": "drm", "HOTPLUG": "1"},
			},
			want: true,
		},
		{
			name: "drm add",
			event: netlink.UEvent{
				Action: netlink.ADD,
				Env:    map[string]string{"SUBSYSTEM": "drm"},
			},
			want: false,
		},
		{
			name: "block change",
			event: netlink.UEvent{
				Action: netlink.CHANGE,
				Env:    map[string]string{"SUBSYSTEM": "block"},
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Evaluate(tt.event); got != tt.want {
				t.Fatalf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleEventTriggersReload(t *testing.T) {
	var reasons []string
	m := newDRMMonitor(logging.NewNop(), func(reason string) {
		reasons = append(reasons, reason)
	})

	m.handleEvent(netlink.UEvent{
		Action: netlink.CHANGE,
		KObj:   "/devices/pci0000:00/0000:00:02.0/drm/card0",
		Env:    map[string]string{"SUBSYSTEM": "drm", "HOTPLUG": "1"},
	})
	m.handleEvent(netlink.UEvent{
		Action: netlink.CHANGE,
		Env:    map[string]string{"SUBSYSTEM": "drm"},
	})

	if len(reasons) != 2 || reasons[0] != "drm hotplug" || reasons[1] != "drm change" {
		t.Fatalf("reasons = %v", reasons)
	}
}
