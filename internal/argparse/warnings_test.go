package argparse_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"compositor/internal/argparse"
	"compositor/internal/config"
	"compositor/internal/logging"
)

type logRecord map[string]any

// jsonLogger records every line at debug and above into a buffer.
func jsonLogger(t *testing.T) (*slog.Logger, func() []logRecord) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() []logRecord {
		var records []logRecord
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			if line == "" {
				continue
			}
			var rec logRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				t.Fatalf("decode log line %q: %v", line, err)
			}
			records = append(records, rec)
		}
		return records
	}
}

// warnedOptions returns the option spellings of warn records with eventType.
func warnedOptions(records []logRecord, eventType string) []string {
	var options []string
	for _, rec := range records {
		if rec["level"] == "WARN" && rec[logging.FieldEventType] == eventType {
			option, _ := rec[logging.FieldOption].(string)
			options = append(options, option)
		}
	}
	return options
}

func TestRemovedOptionsWarn(t *testing.T) {
	logger, records := jsonLogger(t)
	settings := config.Default()
	var pins config.Pins
	r := argparse.Resolver{Logger: logger}
	args := []string{"-z", "-n", "-a", "-s", "--alpha-step", "0.5", "--dbe", "--paint-on-overlay",
		"--glx-copy-from-front", "--glx-use-copysubbuffermesa"}
	if err := r.Resolve(&settings, &pins, args); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	got := warnedOptions(records(), "removed_option")
	want := []string{"-z", "-n", "-a", "-s", "--alpha-step", "--dbe", "--paint-on-overlay",
		"--glx-copy-from-front", "--glx-use-copysubbuffermesa"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("removed warnings = %v, want %v", got, want)
	}
}

func TestDeprecatedOptionsWarnAndApply(t *testing.T) {
	logger, records := jsonLogger(t)
	settings := config.Default()
	var pins config.Pins
	r := argparse.Resolver{Logger: logger}
	if err := r.Resolve(&settings, &pins, []string{"--glx-fshader-win", "s.glsl", "--shadow-exclude-reg", "x10+0+0"}); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	got := warnedOptions(records(), "deprecated_option")
	if strings.Join(got, " ") != "--glx-fshader-win --shadow-exclude-reg" {
		t.Fatalf("deprecated warnings = %v", got)
	}
	if settings.GLXFragmentShaderWin != "s.glsl" {
		t.Fatalf("deprecated value not stored: %q", settings.GLXFragmentShaderWin)
	}
}

func TestActiveOptionsDoNotWarn(t *testing.T) {
	logger, records := jsonLogger(t)
	settings := config.Default()
	var pins config.Pins
	r := argparse.Resolver{Logger: logger}
	if err := r.Resolve(&settings, &pins, []string{"-c", "-r", "4", "-d", ":1", "-S", "--no-name-pixmap"}); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	for _, rec := range records() {
		if rec["level"] == "WARN" {
			t.Fatalf("unexpected warning %v", rec)
		}
	}
}

func TestBootstrapWarnsOnIgnoredLegacyFlags(t *testing.T) {
	logger, records := jsonLogger(t)
	if _, err := argparse.ScanBootstrap([]string{"-d", ":1", "-S", "--no-name-pixmap", "-c"}, logger); err != nil {
		t.Fatalf("ScanBootstrap returned error: %v", err)
	}

	got := warnedOptions(records(), "ignored_option")
	if strings.Join(got, " ") != "-d -S --no-name-pixmap" {
		t.Fatalf("ignored warnings = %v", got)
	}
	for _, rec := range records() {
		if rec[logging.FieldComponent] != "bootstrap" {
			t.Fatalf("warning without bootstrap component: %v", rec)
		}
	}
}
