// Package version holds build metadata injected with linker flags:
//
//	-X 'github.com/mgmacri/pool-maintenance-app/internal/version.Version=0.1.0'
//	-X 'github.com/mgmacri/pool-maintenance-app/internal/version.Commit=abc1234'
//	-X 'github.com/mgmacri/pool-maintenance-app/internal/version.BuildDate=2025-10-05T12:34:56Z'
//
// Local builds without those flags report Version "dev".
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

func Info() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

// String renders the metadata for --version output.
func (b BuildInfo) String() string {
	out := b.Version
	if b.Commit != "" {
		out += " (" + b.Commit + ")"
	}
	if b.BuildDate != "" {
		out += " built " + b.BuildDate
	}
	return out
}
