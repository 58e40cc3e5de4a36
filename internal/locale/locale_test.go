package locale_test

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"compositor/internal/locale"
)

func TestForceRestoresPreviousLocale(t *testing.T) {
	prev := locale.SetNumeric("de_DE.UTF-8")
	t.Cleanup(func() { locale.SetNumeric(prev) })

	restore := locale.Force(locale.C)
	if got := locale.Numeric(); got != locale.C {
		t.Fatalf("expected forced locale %q, got %q", locale.C, got)
	}
	restore()
	restore()
	if got := locale.Numeric(); got != "de_DE.UTF-8" {
		t.Fatalf("expected restored locale, got %q", got)
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		want language.Tag
	}{
		{"C", language.Und},
		{"POSIX", language.Und},
		{"", language.Und},
		{"de_DE.UTF-8", language.MustParse("de-DE")},
		{"fr_FR@euro", language.MustParse("fr-FR")},
		{"not a locale!", language.Und},
	}
	for _, tt := range tests {
		if got := locale.Tag(tt.name); got != tt.want {
			t.Errorf("Tag(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseFloatUsesActiveSeparator(t *testing.T) {
	prev := locale.SetNumeric(locale.C)
	t.Cleanup(func() { locale.SetNumeric(prev) })

	got, err := locale.ParseFloat(" 0.25 ")
	if err != nil || got != 0.25 {
		t.Fatalf("ParseFloat under C = %v, %v", got, err)
	}

	locale.SetNumeric("de_DE.UTF-8")
	if sep := locale.DecimalSeparator("de_DE.UTF-8"); sep != "," {
		t.Fatalf("expected comma separator for de_DE, got %q", sep)
	}
	got, err = locale.ParseFloat("0,5")
	if err != nil || got != 0.5 {
		t.Fatalf("ParseFloat under de_DE = %v, %v", got, err)
	}
	if _, err := locale.ParseFloat("0.5"); !errors.Is(err, locale.ErrMalformed) {
		t.Fatalf("expected dot-decimal to be rejected under de_DE, got %v", err)
	}
}

func TestParseFloatRejectsNonFinite(t *testing.T) {
	prev := locale.SetNumeric(locale.C)
	t.Cleanup(func() { locale.SetNumeric(prev) })

	for _, raw := range []string{"NaN", "inf", "-Inf", "", "abc", "1.5x"} {
		if _, err := locale.ParseFloat(raw); !errors.Is(err, locale.ErrMalformed) {
			t.Errorf("ParseFloat(%q) expected ErrMalformed, got %v", raw, err)
		}
	}
}
