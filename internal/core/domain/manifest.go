package domain

import "go.trai.ch/zerr"

// SettingsVersion is the only supported settings file version.
const SettingsVersion = "1"

// Default manifest settings.
const (
	DefaultHeader              = "# This file is generated by bin/generate_cmakelists.py"
	DefaultCMakeMinimumVersion = "3.12"
	DefaultBaseDir             = "nginx"
	DefaultGeneratedSource     = "objs/ngx_http_datadog_module_modules.c"
	DefaultIndent              = 8
)

// ManifestSettings holds the constant parts of a generated manifest.
type ManifestSettings struct {
	Header              string
	CMakeMinimumVersion string
	BaseDir             string
	GeneratedSource     string
	Indent              int
}

// DefaultManifestSettings returns the settings used when nothing overrides them.
func DefaultManifestSettings() ManifestSettings {
	return ManifestSettings{
		Header:              DefaultHeader,
		CMakeMinimumVersion: DefaultCMakeMinimumVersion,
		BaseDir:             DefaultBaseDir,
		GeneratedSource:     DefaultGeneratedSource,
		Indent:              DefaultIndent,
	}
}

// Validate reports whether the settings can produce a manifest.
func (s ManifestSettings) Validate() error {
	if s.Indent < 0 {
		return zerr.With(ErrInvalidSettings, "indent", s.Indent)
	}
	if s.CMakeMinimumVersion == "" {
		return zerr.With(ErrInvalidSettings, "cmake_minimum_version", "")
	}
	if s.GeneratedSource == "" {
		return zerr.With(ErrInvalidSettings, "generated_source", "")
	}
	return nil
}

// Manifest is the fully resolved content of an object library manifest.
type Manifest struct {
	// TargetName is used verbatim as the CMake project and target name.
	TargetName string
	// Source is the generated module registration source, prefixed with the base directory.
	Source string
	// IncludeDirectories are the prefixed system include paths, in input order.
	IncludeDirectories []string
	// CSources are the prefixed module sources. They are not rendered.
	CSources []string
}

// NewManifest resolves the build info of target against the settings.
func NewManifest(target string, info BuildInfo, settings ManifestSettings) Manifest {
	prefixed := info.Prefixed(settings.BaseDir)
	return Manifest{
		TargetName:         target,
		Source:             JoinBase(settings.BaseDir, settings.GeneratedSource),
		IncludeDirectories: prefixed.IncludeDirectories,
		CSources:           prefixed.CSources,
	}
}
