package argparse

import (
	"strings"
	"unicode/utf8"
)

// occurrence is one option found in the argument vector.
type occurrence struct {
	Option Option
	// Spelling is the flag as the user wrote it, e.g. "-r" or "--shadow-rad".
	Spelling string
	Value    string
}

// walker steps through an argument vector the way getopt_long does:
// long options with "=value" or a separate value token, unambiguous long
// prefixes, bundled short options, attached short values and "--" to end
// option processing. Non-option tokens are collected, not rejected, so the
// caller decides what to do with them once the walk is over.
type walker struct {
	args       []string
	pos        int
	bundle     string
	positional []string
	terminated bool
}

func newWalker(args []string) *walker {
	return &walker{args: args}
}

// Positional returns the non-option tokens seen so far.
func (w *walker) Positional() []string {
	return w.positional
}

// Next returns the next option. ok is false once the vector is exhausted.
func (w *walker) Next() (occ occurrence, ok bool, err error) {
	if w.bundle != "" {
		occ, err = w.short()
		return occ, err == nil, err
	}
	for w.pos < len(w.args) {
		arg := w.args[w.pos]
		w.pos++

		switch {
		case w.terminated:
			w.positional = append(w.positional, arg)
		case arg == "--":
			w.terminated = true
		case strings.HasPrefix(arg, "--"):
			occ, err = w.long(arg[2:])
			return occ, err == nil, err
		case len(arg) > 1 && arg[0] == '-':
			w.bundle = arg[1:]
			occ, err = w.short()
			return occ, err == nil, err
		default:
			w.positional = append(w.positional, arg)
		}
	}
	return occurrence{}, false, nil
}

func (w *walker) long(body string) (occurrence, error) {
	name, value, hasValue := strings.Cut(body, "=")
	spelling := "--" + name

	opt, err := lookupLong(name)
	if err != nil {
		return occurrence{}, usageErr(spelling, err)
	}

	occ := occurrence{Option: opt, Spelling: spelling}
	switch opt.Arity {
	case NoArgument:
		if hasValue {
			return occurrence{}, usageErr(spelling, ErrUnexpectedArgument)
		}
	case RequiredArgument:
		if hasValue {
			occ.Value = value
			break
		}
		if w.pos >= len(w.args) {
			return occurrence{}, usageErr(spelling, ErrMissingArgument)
		}
		occ.Value = w.args[w.pos]
		w.pos++
	}
	return occ, nil
}

func (w *walker) short() (occurrence, error) {
	r, size := utf8.DecodeRuneInString(w.bundle)
	w.bundle = w.bundle[size:]
	spelling := "-" + string(r)

	opt, ok := lookupShort(r)
	if !ok {
		w.bundle = ""
		return occurrence{}, usageErr(spelling, ErrUnknownOption)
	}

	occ := occurrence{Option: opt, Spelling: spelling}
	if opt.Arity == NoArgument {
		return occ, nil
	}
	if w.bundle != "" {
		occ.Value = w.bundle
		w.bundle = ""
		return occ, nil
	}
	if w.pos >= len(w.args) {
		return occurrence{}, usageErr(spelling, ErrMissingArgument)
	}
	occ.Value = w.args[w.pos]
	w.pos++
	return occ, nil
}
