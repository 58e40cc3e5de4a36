package locale

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// C is the POSIX locale; its decimal separator is always ".".
const C = "C"

var (
	mu         sync.Mutex
	numeric    = fromEnvironment()
	separators = map[string]string{}
)

// ErrMalformed reports a value that is not a finite number in the active locale.
var ErrMalformed = errors.New("malformed number")

func fromEnvironment() string {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return C
}

// Numeric returns the active numeric locale name.
func Numeric() string {
	mu.Lock()
	defer mu.Unlock()
	return numeric
}

// SetNumeric replaces the numeric locale and returns the previous name.
func SetNumeric(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = C
	}
	mu.Lock()
	defer mu.Unlock()
	prev := numeric
	numeric = name
	return prev
}

// Force switches the numeric locale to name. The returned function puts the
// previous locale back and is safe to call more than once.
func Force(name string) (restore func()) {
	prev := SetNumeric(name)
	var once sync.Once
	return func() {
		once.Do(func() { SetNumeric(prev) })
	}
}

// Tag maps a POSIX locale name such as "de_DE.UTF-8@euro" to a language tag.
// C, POSIX and unparseable names map to language.Und.
func Tag(name string) language.Tag {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", C, "POSIX":
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// DecimalSeparator returns the decimal separator used by the named locale.
func DecimalSeparator(name string) string {
	mu.Lock()
	sep, ok := separators[name]
	mu.Unlock()
	if ok {
		return sep
	}

	sep = "."
	sample := message.NewPrinter(Tag(name)).Sprintf("%.1f", 1.5)
	if len(sample) > 2 && strings.HasPrefix(sample, "1") && strings.HasSuffix(sample, "5") {
		sep = sample[1 : len(sample)-1]
	}

	mu.Lock()
	separators[name] = sep
	mu.Unlock()
	return sep
}

// ParseFloat parses raw with the decimal separator of the active numeric
// locale. Leading and trailing blanks are ignored; NaN and infinities are
// rejected.
func ParseFloat(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if sep := DecimalSeparator(Numeric()); sep != "." {
		if strings.Contains(value, ".") {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, raw)
		}
		value = strings.Replace(value, sep, ".", 1)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	return parsed, nil
}
