package domain

// Field names of the build info document.
const (
	FieldIncludeDirectories = "include_directories"
	FieldCSources           = "c_sources"
)

// BuildInfo lists the source files and include directories of an nginx
// module build, relative to the nginx source tree.
type BuildInfo struct {
	IncludeDirectories []string `json:"include_directories"`
	CSources           []string `json:"c_sources"`
}

// Prefixed returns a copy of the build info with every path joined onto base.
func (b BuildInfo) Prefixed(base string) BuildInfo {
	return BuildInfo{
		IncludeDirectories: JoinAll(base, b.IncludeDirectories),
		CSources:           JoinAll(base, b.CSources),
	}
}
