package version

import (
	"fmt"
	"runtime/debug"
)

var (
	tag       = "dev"
	buildInfo string
)

func Version() string {
	return fmt.Sprintf("%s %s", tag, buildInfo)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		tag = info.Main.Version
	}

	var goos, goarch, revision string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "GOOS":
			goos = s.Value
		case "GOARCH":
			goarch = s.Value
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision != "" {
		if len(revision) > 8 {
			revision = revision[:8]
		}
		tag = revision
		if dirty {
			tag += "-dirty"
		}
	}

	buildInfo = fmt.Sprintf("%s/%s", goos, goarch)
}
