// Package locale owns the process-wide numeric locale.
//
// The numeric locale decides which decimal separator ParseFloat expects. It is
// seeded from LC_ALL, LC_NUMERIC and LANG at start-up and treated as a scoped
// resource: callers that need dot-decimal parsing take it with Force and
// release it with the returned restore function, normally via defer, so the
// previous value survives every exit path.
package locale
