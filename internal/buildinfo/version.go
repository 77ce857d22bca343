// Package buildinfo holds the release tag stamped into the greet binary.
package buildinfo

// Version is overwritten by the release build:
//
//	go build -ldflags "-X github.com/YoshitsuguKoike/greet/internal/buildinfo.Version=v1.0.0" ./cmd/greet
//
// Local builds keep "dev".
var Version = "dev"

// GetVersion reports Version, treating an empty stamp as "dev".
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
