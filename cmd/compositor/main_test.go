package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compositor/internal/argparse"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compositor.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestVersionPrintsVersion(t *testing.T) {
	out, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Fatalf("output = %q, want %q", out, version)
	}
}

func TestHelpPrintsUsage(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		out, err := runCLI(t, "-c", flag)
		if err != nil {
			t.Fatalf("%s: %v", flag, err)
		}
		requireContains(t, out, "Usage: compositor [OPTION]...")
		requireContains(t, out, "--shadow-radius RADIUS")
	}
}

func TestHelpWithBadOptionFails(t *testing.T) {
	out, err := runCLI(t, "-h", "--bogus")
	var usage *argparse.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if out != "" {
		t.Fatalf("usage must not go to stdout on error: %q", out)
	}
}

func TestUnknownOptionReportsUsage(t *testing.T) {
	_, err := runCLI(t, "--no-such-option")
	var usage *argparse.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError, got %v", err)
	}

	var buf bytes.Buffer
	reportError(&buf, err, "compositor")
	out := buf.String()
	requireContains(t, out, "compositor: --no-such-option: unrecognized option")
	requireContains(t, out, "Usage: compositor")
}

func TestLoaderErrorOmitsUsage(t *testing.T) {
	path := writeConfig(t, "shadow-radius = \"wide\"\n")
	_, err := runCLI(t, "--config", path, "--diagnostics")
	if err == nil {
		t.Fatal("expected loader error")
	}

	var buf bytes.Buffer
	reportError(&buf, err, "compositor")
	requireContains(t, buf.String(), "load config")
	if strings.Contains(buf.String(), "Usage:") {
		t.Fatalf("loader error should not print usage:\n%s", buf.String())
	}
}

func TestDiagnosticsPrintsResolvedSettings(t *testing.T) {
	path := writeConfig(t, "shadow = true\nbackend = \"glx\"\n\n[wintypes.dock]\nshadow = false\n")
	out, err := runCLI(t, "--config", path, "--diagnostics", "-r", "20", "--vsync", "opengl-swc",
		"--shadow-exclude", "class_g = 'a'", "--shadow-exclude", "class_g = 'b'")
	if err != nil {
		t.Fatalf("--diagnostics: %v", err)
	}
	requireContains(t, out, "[OK] "+path)
	requireContains(t, out, "glx")
	requireContains(t, out, "opengl-swc")
	requireContains(t, out, "shadow radius")
	requireContains(t, out, "20")
	requireContains(t, out, "dock")
	requireContains(t, out, "tooltip")
	requireContains(t, out, "unredir-if-possible-exclude")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, " shadow-exclude ") && !strings.Contains(line, "2") {
			t.Fatalf("shadow-exclude count missing: %q", line)
		}
	}
}

func TestLogPathWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "compositor.log")
	if _, err := runCLI(t, "--logpath", logPath, "--log-level", "info", "--diagnostics"); err != nil {
		t.Fatalf("--logpath: %v", err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}
