// Package shutdown coordinates orderly process termination.
//
// The shutdown flush must run exactly once, after the host stops
// serving players but before the process exits. Handler collects
// cleanup hooks during startup and runs them in reverse registration
// order when a termination signal arrives or Trigger is called,
// bounded by a single deadline shared across all hooks.
package shutdown
