package logging_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compositor/internal/logging"
)

func newFileLogger(t *testing.T, opts logging.Options) (*slog.Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "compositor.log")
	opts.OutputPaths = []string{logPath}
	logger, err := logging.New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLoggerOmitsCallerForWarn(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "warn"})
	logger.Warn("message without caller")

	content := readLog(t, path)
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information, got %q", content)
	}
	if !strings.Contains(content, " WARN message without caller") {
		t.Fatalf("unexpected line %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "debug"})
	logger.Info("message with caller")

	if content := readLog(t, path); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerPrefixesComponent(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "info"})
	logging.NewComponentLogger(logger, "resolver").Info("parsed", logging.Int("count", 3))

	content := readLog(t, path)
	if !strings.Contains(content, "INFO resolver: parsed count=3") {
		t.Fatalf("unexpected line %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "error"})
	logger.Warn("hidden")
	logger.Error("shown")

	content := readLog(t, path)
	if strings.Contains(content, "hidden") || !strings.Contains(content, "shown") {
		t.Fatalf("unexpected filtering result %q", content)
	}
}

func TestLevelVarCanChangeAfterConstruction(t *testing.T) {
	levelVar := new(slog.LevelVar)
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "warn", LevelVar: levelVar})
	logger.Info("before")
	levelVar.Set(logging.LevelTrace)
	logger.Log(context.Background(), logging.LevelTrace, "after")

	content := readLog(t, path)
	if strings.Contains(content, "before") {
		t.Fatalf("info should be filtered at warn, got %q", content)
	}
	if !strings.Contains(content, "TRACE after") {
		t.Fatalf("expected trace record, got %q", content)
	}
}

func TestJSONLoggerFields(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "json", Level: "warn"})
	logging.WarnWithContext(logging.NewComponentLogger(logger, "normalize"), "clamped", "value_clamped")

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, path))), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record["level"] != "warn" || record["msg"] != "clamped" {
		t.Fatalf("unexpected record %v", record)
	}
	for _, key := range []string{logging.FieldComponent, logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact, "ts"} {
		if _, ok := record[key]; !ok {
			t.Fatalf("missing %s in %v", key, record)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   logging.LevelTrace,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"fatal":   logging.LevelFatal,
		"":        slog.LevelWarn,
	}
	for name, want := range cases {
		got, ok := logging.ParseLevel(name)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", name, got, ok, want)
		}
	}
	if _, ok := logging.ParseLevel("verbose"); ok {
		t.Fatal("expected unknown level to be rejected")
	}
	if logging.LevelName(logging.LevelFatal) != "fatal" || logging.LevelName(slog.LevelInfo) != "info" {
		t.Fatal("unexpected level names")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "info"})
	ctx := logging.WithRunID(context.Background(), "run-1")
	logging.WithContext(ctx, logger).Info("contextual log")

	if content := readLog(t, path); !strings.Contains(content, "run_id=run-1") {
		t.Fatalf("expected run id in %q", content)
	}
}

type backendName string

func (b backendName) String() string { return "backend-" + string(b) }

func TestConsoleValueFormatting(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "info"})
	logger.Info("values",
		slog.String("pattern", "class_g = 'Firefox'"),
		slog.Any("patterns", []string{"a", "b"}),
		slog.Any("backend", backendName("glx")),
		slog.String("empty", ""),
		slog.Bool("on", true),
	)

	content := readLog(t, path)
	for _, want := range []string{
		`pattern="class_g = 'Firefox'"`,
		"patterns=a,b",
		"backend=backend-glx",
		`empty=""`,
		"on=true",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestWarnWithContextFillsDefaults(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "json", Level: "warn"})
	logging.WarnWithContext(logger, "removed", "removed_option",
		logging.Option("-z"),
		logging.String(logging.FieldImpact, "nothing happens"),
	)

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, path))), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload[logging.FieldEventType] != "removed_option" || payload[logging.FieldOption] != "-z" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload[logging.FieldImpact] != "nothing happens" {
		t.Fatalf("impact overridden: %v", payload[logging.FieldImpact])
	}
	if payload[logging.FieldErrorHint] != "see --help for supported options" {
		t.Fatalf("missing default hint: %v", payload)
	}
}

func TestTraceRespectsLevel(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "debug"})
	logging.Trace(logger, "too quiet")
	logging.Trace(nil, "nil logger")

	if content := readLog(t, path); strings.Contains(content, "too quiet") {
		t.Fatalf("trace line emitted at debug level: %q", content)
	}
}

func TestConsoleLiftsOptionAndGroups(t *testing.T) {
	logger, path := newFileLogger(t, logging.Options{Format: "console", Level: "info"})
	resolver := logging.NewComponentLogger(logger, "resolver")
	resolver.Warn("clamped", logging.Option("--shadow-red"), logging.Int("value", 2))
	resolver.WithGroup("shadow").Info("grouped", logging.Int("radius", 12))

	content := readLog(t, path)
	if !strings.Contains(content, "WARN resolver: [--shadow-red] clamped value=2") {
		t.Fatalf("unexpected line %q", content)
	}
	if !strings.Contains(content, "INFO resolver: grouped shadow.radius=12") {
		t.Fatalf("unexpected grouped line %q", content)
	}
}
