// Package buildinfo exposes build-time version information.
//
// Values are injected via ldflags:
//
//	go build -ldflags "-X github.com/venus98/AuthMeReloaded/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
