// Package version holds the build fingerprints printed by sheetnav version.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// Overridable at build time:
//
//	go build -ldflags "-X sheetnav/internal/version.GitCommit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the CLI.
	Version = "0.3.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored paints the major, minor and patch numbers; anything after the
// patch (e.g. "-dev") stays plain.
func Colored(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	patch, rest := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, rest = patch[:i], patch[i:]
	}
	return majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(patch) + rest
}

// Fingerprint is one key: value line per known build property.
func Fingerprint(colored bool) string {
	v := Version
	if colored {
		v = Colored(v)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "sheetnav %s\n", v)
	if GitCommit != "" {
		fmt.Fprintf(&b, "commit:  %s\n", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&b, "built:   %s\n", BuildDate)
	}
	fmt.Fprintf(&b, "go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}
