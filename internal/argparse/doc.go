// Package argparse owns the compositor's command-line surface.
//
// The option catalog is the single list of accepted flags. ScanBootstrap
// makes a cheap first pass that finds the configuration path and handles
// version and help requests before anything is loaded. Resolver makes the
// authoritative second pass, applying every option on top of the loaded
// settings through a table of per-option handlers. Both passes share a
// getopt_long compatible walker, so bundled short flags, attached values
// and unambiguous long prefixes behave the same way in each.
//
// Every fatal problem is reported as a *UsageError; nothing here exits the
// process.
package argparse
