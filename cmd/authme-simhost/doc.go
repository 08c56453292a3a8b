// Package main provides the entry point for authme-simhost.
//
// authme-simhost is a simulated game-server host for exercising the
// AuthMe extension outside a real server process. It boots a fake host
// with a synthetic player roster, enables the extension, and drives
// the shutdown flush.
//
// Usage:
//
//	authme-simhost [flags]
//	authme-simhost --authenticated 3 --limbo 2 --npcs 1 --shape legacy
//	authme-simhost --config /path/to/config.yaml --wait
//
// With --wait the process stays up until SIGINT/SIGTERM, which is the
// closest approximation of a host stop sequence; without it the
// shutdown fires immediately after startup.
package main
