package version

// Overridden at build time via -ldflags "-X .../pkg/version.version=...".
var version = "0.0.0-dev"

func Version() string {
	return version
}
