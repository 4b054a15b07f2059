package models

// AppBuildInfo carries the build metadata injected via -ldflags.
type AppBuildInfo struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}
