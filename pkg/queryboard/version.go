// Package queryboard exposes build metadata shared by the CLI and tests.
package queryboard

// Version is the queryboard release version. Overridable at build time via
// -ldflags "-X github.com/mesh-intelligence/queryboard/pkg/queryboard.Version=...".
var Version = "0.1.0"
