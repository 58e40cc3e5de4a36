// Package session keeps the resolved compositor settings alive after
// startup.
//
// A Session stores the active settings behind an atomic pointer, writes and
// locks the pid file requested by --write-pid-path, and re-runs the full
// resolution pipeline when it receives SIGUSR1 or SIGHUP or when the kernel
// reports a DRM connector change over netlink. A reload that fails leaves
// the previous settings in place.
package session
