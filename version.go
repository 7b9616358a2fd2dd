package weave

import "fmt"

// Release version, following semantic versioning.
const (
	Maj = 0
	Min = 1
	Fix = 0
)

// Suffix marks builds that are not tagged releases, for example "-dev".
var Suffix = "-dev"

// GitCommit is set at build time with
//
//	-ldflags "-X github.com/invarch/weave.GitCommit=<hash>"
var GitCommit = ""

// Version returns the release version, followed by the commit hash when
// known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit != "" {
		v += " " + GitCommit
	}
	return v
}
