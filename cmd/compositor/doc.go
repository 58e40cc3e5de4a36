// Command compositor resolves the compositor's settings from defaults, the
// TOML configuration file and the command line, then holds them in a
// session that reloads on SIGUSR1 or display changes.
//
// The root command hands the raw argument vector to the option catalog, so
// every getopt-style form (-cf, -r10, --shadow-rad=8, --) behaves as it
// always has. Subcommands:
//
//	compositor config init [--path PATH] [--overwrite]
//	compositor config validate [OPTION]...
package main
