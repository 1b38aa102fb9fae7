package domain

import "go.trai.ch/zerr"

var (
	// ErrUsage is returned when the command line does not name exactly one target.
	ErrUsage = zerr.New("usage: cmakegen <target_name>")

	// ErrParse is returned when the build info document is not a JSON object
	// of the expected shape.
	ErrParse = zerr.New("failed to parse build info")

	// ErrMissingField is returned when a required build info field is absent.
	ErrMissingField = zerr.New("missing required field")

	// ErrInputReadFailed is returned when the build info cannot be read.
	ErrInputReadFailed = zerr.New("failed to read build info")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSettings is returned when the manifest settings are unusable.
	ErrInvalidSettings = zerr.New("invalid manifest settings")

	// ErrRenderFailed is returned when the manifest cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestStale is returned by a check run when the file on disk
	// differs from the rendered manifest.
	ErrManifestStale = zerr.New("manifest is out of date")
)
