package buildinfo

import "fmt"

// Set at build time via -ldflags "-X sparkcalc/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build line printed by -version.
func String() string {
	return fmt.Sprintf("sparkcalc %s (commit %s, built %s)", Version, Commit, Date)
}
