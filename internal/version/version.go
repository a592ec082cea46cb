// Package version exposes build version information.
package version

// Version is the localsearch version, overridable at build time via
// -ldflags "-X localsearch/internal/version.Version=...".
var Version = "0.3.0-dev"
