// Package version reports how the binary was built and which rule table
// format it reads.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/teranos/headsmith/rules"
)

// Set with -ldflags "-X github.com/teranos/headsmith/version.Version=v1.2.0" and friends
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info is what `headsmith version` prints
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	RuleFormat string `json:"rule_format"` // semver constraint on the rule table's [meta] format
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get collects build information. Binaries built without ldflags fall back
// to the VCS stamp the Go toolchain embeds.
func Get() Info {
	info := Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		RuleFormat: rules.SupportedFormat,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.applyBuildSettings(bi.Settings)
	}
	return info
}

func (i *Info) applyBuildSettings(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if i.CommitHash == "dev" {
				i.CommitHash = s.Value
			}
		case "vcs.time":
			if i.BuildTime == "unknown" {
				i.BuildTime = s.Value
			}
		}
	}
}

// String returns the one-line version banner
func (i Info) String() string {
	return fmt.Sprintf("headsmith %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
