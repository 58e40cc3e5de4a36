package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compositor/internal/config"
	"compositor/internal/logging"
)

func TestNormalizeClampsRanges(t *testing.T) {
	s := config.Default()
	s.FadeDelta = 0
	s.ShadowRadius = -4
	s.RefreshRate = 500
	s.ShadowRed = 2
	s.ShadowGreen = -1
	s.InactiveDim = 1.5
	s.FrameOpacity = -0.2
	s.ShadowOpacity = 3

	s.Normalize(&config.Pins{}, logging.NewNop())

	if s.FadeDelta != 1 {
		t.Fatalf("fade delta = %d, want 1", s.FadeDelta)
	}
	if s.ShadowRadius != 0 {
		t.Fatalf("shadow radius = %d, want 0", s.ShadowRadius)
	}
	if s.RefreshRate != 300 {
		t.Fatalf("refresh rate = %d, want 300", s.RefreshRate)
	}
	if s.ShadowRed != 1 || s.ShadowGreen != 0 {
		t.Fatalf("shadow colour not clamped: %v %v", s.ShadowRed, s.ShadowGreen)
	}
	if s.InactiveDim != 1 || s.FrameOpacity != 0 || s.ShadowOpacity != 1 {
		t.Fatalf("unexpected clamps dim=%v frame=%v shadow=%v", s.InactiveDim, s.FrameOpacity, s.ShadowOpacity)
	}

	s.RefreshRate = -5
	s.Normalize(&config.Pins{}, logging.NewNop())
	if s.RefreshRate != 0 {
		t.Fatalf("refresh rate = %d, want 0", s.RefreshRate)
	}
}

func TestNormalizeFillsOnlyUnpinnedWindowTypes(t *testing.T) {
	s := config.Default()
	pins := config.Pins{ShadowEnabled: true}
	pins.PinShadow(&s, config.WindowTypeDock, false)
	pins.PinFade(&s, config.WindowTypeTooltip, true)

	s.Normalize(&pins, logging.NewNop())

	for i, opts := range s.WindowTypes {
		wt := config.WindowType(i)
		wantShadow := wt != config.WindowTypeDock
		if opts.Shadow != wantShadow {
			t.Fatalf("%s shadow = %v, want %v", wt, opts.Shadow, wantShadow)
		}
		wantFade := wt == config.WindowTypeTooltip
		if opts.Fade != wantFade {
			t.Fatalf("%s fade = %v, want %v", wt, opts.Fade, wantFade)
		}
	}
	if pins.Mask[config.WindowTypeNormal].Shadow {
		t.Fatal("default fill must not mark categories as pinned")
	}
}

func TestNormalizeImplicationsAndTracking(t *testing.T) {
	s := config.Default()
	s.BlurBackgroundFrame = true
	s.XRenderSyncFence = true
	s.DetectClientLeader = true
	s.InactiveDim = 0.1

	s.Normalize(&config.Pins{}, logging.NewNop())

	if !s.BlurBackground {
		t.Fatal("blur-background-frame should enable blur-background")
	}
	if len(s.BlurKernels) != 1 || s.BlurKernels[0].Width != 3 || s.BlurKernels[0].Height != 3 {
		t.Fatalf("expected default 3x3 kernel, got %+v", s.BlurKernels)
	}
	if !s.XRenderSync {
		t.Fatal("xrender-sync-fence should enable xrender-sync")
	}
	if !s.TrackFocus || !s.TrackLeader {
		t.Fatalf("expected focus and leader tracking, got focus=%v leader=%v", s.TrackFocus, s.TrackLeader)
	}
}

func TestNormalizeDefaultsDeriveNothing(t *testing.T) {
	s := config.Default()
	s.Normalize(nil, logging.NewNop())

	if s.TrackFocus || s.TrackLeader {
		t.Fatalf("unexpected tracking focus=%v leader=%v", s.TrackFocus, s.TrackLeader)
	}
	if s.BlurBackground || len(s.BlurKernels) != 0 {
		t.Fatal("blur should stay disabled by default")
	}
	if s.WindowTypes[config.WindowTypeNormal].Shadow {
		t.Fatal("shadows are off unless enabled globally or per type")
	}
}

func TestNormalizeTracksFocusOnOpacityDifference(t *testing.T) {
	s := config.Default()
	s.InactiveOpacity = config.OpacityFromFraction(0.8)
	s.Normalize(&config.Pins{}, logging.NewNop())
	if !s.TrackFocus {
		t.Fatal("expected focus tracking when inactive and active opacity differ")
	}
}

func TestAdvisories(t *testing.T) {
	s := config.Default()
	if got := s.Advisories(); len(got) != 0 {
		t.Fatalf("defaults produced advisories: %+v", got)
	}

	s.MonitorRepaint = true
	s.Backend = config.BackendGLX
	s.ResizeDamage = -1
	got := s.Advisories()
	events := map[string]bool{}
	for _, a := range got {
		events[a.EventType] = true
	}
	if !events["monitor_repaint_ignored"] || !events["negative_resize_damage"] {
		t.Fatalf("missing advisories: %+v", got)
	}

	s = config.Default()
	kernels, err := config.ParseBlurKernels("3,3,-1,0,0,0,0,0,0,0")
	if err != nil {
		t.Fatalf("ParseBlurKernels: %v", err)
	}
	s.BlurKernels = kernels
	if got := s.Advisories(); len(got) != 1 || got[0].EventType != "blur_kernel_negative" {
		t.Fatalf("expected negative kernel advisory, got %+v", got)
	}
}

func TestNormalizeLogsAdvisories(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "normalize.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "warn", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	s := config.Default()
	s.MonitorRepaint = true
	s.Backend = config.BackendGLX
	var pins config.Pins
	s.Normalize(&pins, logger)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &rec); err != nil {
		t.Fatalf("expected one JSON warning, got %q: %v", content, err)
	}
	if rec["level"] != "warn" || rec[logging.FieldEventType] != "monitor_repaint_ignored" || rec[logging.FieldComponent] != "normalize" {
		t.Fatalf("unexpected record %v", rec)
	}
	if rec[logging.FieldErrorHint] == nil || rec[logging.FieldImpact] == nil {
		t.Fatalf("warning lacks hint or impact: %v", rec)
	}
}

func TestNormalizeDefaultsLogNothing(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "normalize.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "warn", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	s := config.Default()
	s.Normalize(&config.Pins{}, logger)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(content) != 0 {
		t.Fatalf("defaults produced warnings: %q", content)
	}
}
