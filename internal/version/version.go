package version

// Version is the bin2c release, overridden at build time with
// -ldflags "-X github.com/xll-gen/bin2c/internal/version.Version=...".
var Version = "v0.1.0-dev"
