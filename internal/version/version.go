// internal/version/version.go
package version

// Version is the released jcdist version. Overridable at build time:
//
//	go build -ldflags "-X jcdist/internal/version.Version=v0.4.0-dev"
var Version = "0.3.0"
