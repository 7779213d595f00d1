// Package emblem is the root of the emblem module: an indentation-structural
// editing engine for Emblem templates (see packages classify, engine and
// mode) plus a small Bubble Tea host (packages buffer and editor).
package emblem

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without the `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 string. A leading `v` is
// rejected.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

func VersionIsSemver() bool {
	return IsSemver(Version())
}

// Banner is the one-line identification printed by cmd/emblem -version.
func Banner() string {
	return "emblem " + VersionTag()
}
