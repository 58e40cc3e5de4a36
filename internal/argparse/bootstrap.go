package argparse

import (
	"log/slog"

	"compositor/internal/logging"
)

// Action is what the caller should do after the bootstrap scan.
type Action int

const (
	// ActionContinue proceeds to loading the configuration file.
	ActionContinue Action = iota
	// ActionVersion prints the version string and exits 0.
	ActionVersion
	// ActionHelp prints the usage text to stdout and exits 0.
	ActionHelp
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionVersion:
		return "version"
	case ActionHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Bootstrap holds what the bootstrap scan learned before any configuration
// is loaded.
type Bootstrap struct {
	Action         Action
	ConfigFile     string
	ShowAllXErrors bool
}

// ScanBootstrap makes the cheap first pass over args. It only acts on the
// config path, the X error toggle, version and help requests and the ignored
// legacy flags; every other option is syntax-checked and skipped. Each call
// walks args from the start, so repeated scans of the same vector agree.
// --version returns at once; -h is honoured only after the whole vector
// parses cleanly.
func ScanBootstrap(args []string, logger *slog.Logger) (Bootstrap, error) {
	logger = logging.NewComponentLogger(logger, "bootstrap")

	var boot Bootstrap
	var help bool
	w := newWalker(args)
	for {
		occ, ok, err := w.Next()
		if err != nil {
			return Bootstrap{}, err
		}
		if !ok {
			break
		}

		switch occ.Option.ID {
		case OptConfig:
			boot.ConfigFile = occ.Value
		case OptShowAllXErrors:
			boot.ShowAllXErrors = true
		case OptVersion:
			return Bootstrap{Action: ActionVersion}, nil
		case OptHelp:
			help = true
		case OptDisplay, OptSynchronize, OptNoNamePixmap:
			logging.WarnWithContext(logger, occ.Option.Notice, "ignored_option",
				logging.Option(occ.Spelling),
				logging.String(logging.FieldImpact, "option ignored"),
			)
		}
	}

	if len(w.Positional()) > 0 {
		return Bootstrap{}, usageErr("", ErrPositional)
	}
	// Help only wins over a vector that is otherwise well formed.
	if help {
		return Bootstrap{Action: ActionHelp}, nil
	}
	return boot, nil
}
