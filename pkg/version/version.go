// Package version reports the build identity of the unitmeta binary.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/pkg/errors"
)

var (
	// Version is set with -ldflags at build time
	Version = "dev"

	// GitCommit is set with -ldflags at build time
	GitCommit = "unknown"
)

// Info represents version information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// Get returns the version information. When the binary was built without
// ldflags, the module version and VCS revision recorded by the Go toolchain
// are used instead.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return fromBuildInfo(info, bi)
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if info.GitCommit == "unknown" {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				info.GitCommit = setting.Value
			}
		}
	}
	return info
}

// String returns the string representation of version info
func (i Info) String() string {
	return fmt.Sprintf("unitmeta %s (commit %s, %s)", i.Version, i.GitCommit, i.GoVersion)
}

// JSON returns the indented JSON representation of version info
func (i Info) JSON() (string, error) {
	bytes, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal version info")
	}
	return string(bytes), nil
}
