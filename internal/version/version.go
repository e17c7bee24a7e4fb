// Package version holds build and package metadata. Version, Commit and Date are injected
// via ldflags; the remaining values are the defaults for the bot's public identity.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Package metadata used when the configuration leaves bot identity fields empty.
const (
	Name            = "askbot"
	AuthorName      = "Kailas Cloud"
	AuthorEmail     = "opensource@kailas.cloud"
	BugReportURL    = "https://github.com/kailas-cloud/askbot/issues"
	DefaultHTTPPort = 3000
)
