// Package build holds values stamped into the binary at link time.
package build

var (
	// Version is the release version. It defaults to "dev".
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "unknown"
)

// String returns the version followed by the commit.
func String() string {
	return Version + " (" + Commit + ")"
}
