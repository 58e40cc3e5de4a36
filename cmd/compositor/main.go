package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"compositor/internal/argparse"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err, cmd.Name())
		os.Exit(1)
	}
}

// reportError prints err and, for argument problems, the usage text.
func reportError(w io.Writer, err error, program string) {
	if errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintf(w, "%s: %v\n", program, err)
	var usage *argparse.UsageError
	if errors.As(err, &usage) {
		_ = argparse.WriteUsage(w, program)
	}
}
