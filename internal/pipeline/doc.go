// Package pipeline runs the configuration stages in order: bootstrap scan,
// configuration file load, command-line resolution and normalization. Each
// run starts from compiled-in defaults, so a reload is simply another Run.
package pipeline
