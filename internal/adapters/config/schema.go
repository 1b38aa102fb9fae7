package config

// Settingsfile represents the structure of the cmakegen.yaml settings file.
type Settingsfile struct {
	Version  string      `yaml:"version"`
	Manifest ManifestDTO `yaml:"manifest"`
}

// ManifestDTO represents the manifest overrides in the settings file.
// Nil fields keep the value they are applied on top of.
type ManifestDTO struct {
	Header              *string `yaml:"header"`
	CMakeMinimumVersion *string `yaml:"cmake_minimum_version"`
	BaseDir             *string `yaml:"base_dir"`
	GeneratedSource     *string `yaml:"generated_source"`
	Indent              *int    `yaml:"indent"`
}
