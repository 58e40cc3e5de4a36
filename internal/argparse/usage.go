package argparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	usageIndent = "        "
	usageWidth  = 72
)

// WriteUsage renders the help text for every documented option in catalog
// order. Removed options and ignored legacy flags are left out.
func WriteUsage(w io.Writer, program string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTION]...\n\nOptions:\n", program)
	for _, opt := range catalog {
		if opt.Usage == "" || opt.Status == StatusRemoved {
			continue
		}
		b.WriteString("  ")
		b.WriteString(optionSynopsis(opt))
		b.WriteByte('\n')
		for _, line := range strings.Split(text.WrapSoft(opt.Usage, usageWidth-len(usageIndent)), "\n") {
			b.WriteString(usageIndent)
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func optionSynopsis(opt Option) string {
	var forms []string
	if opt.Short != 0 {
		forms = append(forms, "-"+string(opt.Short))
	}
	if opt.Long != "" {
		forms = append(forms, "--"+opt.Long)
	}
	synopsis := strings.Join(forms, ", ")
	if opt.Arity == RequiredArgument {
		synopsis += " " + opt.Meta
	}
	return synopsis
}
