package common

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X" at release build time.
var (
	version   = "0.0.0"
	buildDate = "1970-01-01T00:00:00Z"
	gitCommit = ""
	gitTag    = ""
)

type Version struct {
	Version   string
	BuildDate string
	GitCommit string
	GitTag    string
	GoVersion string
	Platform  string
}

func (v Version) String() string {
	return v.Version
}

func GetVersion() Version {
	return Version{
		Version:   versionString(),
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GitTag:    gitTag,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func versionString() string {
	if gitTag != "" {
		return gitTag
	}
	if len(gitCommit) >= 7 {
		return fmt.Sprintf("v%s+%s", version, gitCommit[:7])
	}
	return fmt.Sprintf("v%s+unknown", version)
}

func PrintVersion() {
	v := GetVersion()
	fmt.Printf("fd-agent: %s\n", v)
	fmt.Printf("  BuildDate: %s\n", v.BuildDate)
	if v.GitCommit != "" {
		fmt.Printf("  GitCommit: %s\n", v.GitCommit)
	}
	fmt.Printf("  GoVersion: %s %s\n", v.GoVersion, v.Platform)
}
