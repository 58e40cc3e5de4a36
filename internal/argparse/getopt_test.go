package argparse

import (
	"errors"
	"reflect"
	"testing"
)

type walked struct {
	id    ID
	value string
}

func walkAll(t *testing.T, args ...string) ([]walked, []string, error) {
	t.Helper()
	w := newWalker(args)
	var out []walked
	for {
		occ, ok, err := w.Next()
		if err != nil {
			return out, w.Positional(), err
		}
		if !ok {
			return out, w.Positional(), nil
		}
		out = append(out, walked{occ.Option.ID, occ.Value})
	}
}

func TestWalkerForms(t *testing.T) {
	got, positional, err := walkAll(t,
		"-cf", "-r10", "-o", "0.5", "--shadow-offset-x=-3", "--vsync", "drm",
		"--fade-del", "4", "-Cb", "--", "-c",
	)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	want := []walked{
		{OptShadow, ""},
		{OptFading, ""},
		{OptShadowRadius, "10"},
		{OptShadowOpacity, "0.5"},
		{OptShadowOffsetX, "-3"},
		{OptVSync, "drm"},
		{OptFadeDelta, "4"},
		{OptNoDockShadow, ""},
		{OptDaemon, ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("walk = %+v\nwant %+v", got, want)
	}
	if !reflect.DeepEqual(positional, []string{"-c"}) {
		t.Fatalf("positional = %v", positional)
	}
}

func TestWalkerRequiredArgumentTakesNextTokenVerbatim(t *testing.T) {
	got, _, err := walkAll(t, "-l", "-20", "--shadow-exclude", "--not-a-flag")
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if got[0].value != "-20" || got[1].value != "--not-a-flag" {
		t.Fatalf("unexpected values %+v", got)
	}
}

func TestWalkerCollectsPositionals(t *testing.T) {
	got, positional, err := walkAll(t, "extra", "-c", "-", "more")
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(got) != 1 || !reflect.DeepEqual(positional, []string{"extra", "-", "more"}) {
		t.Fatalf("got %+v positional %v", got, positional)
	}
}

func TestWalkerErrors(t *testing.T) {
	cases := map[string]struct {
		args []string
		want error
	}{
		"unknown long":        {[]string{"--not-a-flag"}, ErrUnknownOption},
		"unknown short":       {[]string{"-x"}, ErrUnknownOption},
		"unknown in bundle":   {[]string{"-cx"}, ErrUnknownOption},
		"missing long value":  {[]string{"--vsync"}, ErrMissingArgument},
		"missing short value": {[]string{"-r"}, ErrMissingArgument},
		"value on flag":       {[]string{"--shadow=yes"}, ErrUnexpectedArgument},
		"ambiguous prefix":    {[]string{"--shadow-r", "1"}, ErrAmbiguousOption},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := walkAll(t, tc.args...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			var usage *UsageError
			if !errors.As(err, &usage) || usage.Option == "" {
				t.Fatalf("expected a UsageError naming the option, got %#v", err)
			}
		})
	}
}
