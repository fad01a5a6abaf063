// internal/version/version.go
package version

// Version is the toolkit version. Override at build time with
// -ldflags "-X stockholm/internal/version.Version=...".
var Version = "0.1.0"
