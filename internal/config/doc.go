// Package config holds the compositor's runtime settings.
//
// It supplies compiled-in defaults, reads the optional TOML configuration
// file, parses the compound values shared with the command line (backends,
// vsync methods, blur kernels, opacity rules) and normalizes the merged result.
// Per-window-type options carry an explicit-set mask in Pins so that values
// pinned by the file or a flag survive the default fill.
//
// Callers obtain a Settings value from Default, layer the file and flags over
// it, then call Normalize exactly once.
package config
