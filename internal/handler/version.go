package handler

import (
	"net/http"
	"runtime/debug"
	"sync"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Build-time overrides, set with -ldflags -X when building outside a VCS checkout
var (
	BuildTime string
	GitCommit string
)

var buildInfo = sync.OnceValue(func() VersionInfo {
	info := VersionInfo{BuildTime: BuildTime, GitCommit: GitCommit}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
})

// HandleVersion reports the configured release name and what the binary
// knows about how it was built
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version string) http.HandlerFunc {
	info := buildInfo()
	info.Version = version
	if info.Version == "" {
		info.Version = "dev"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
