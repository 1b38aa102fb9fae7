// Package config provides the settings file loader for cmakegen.
package config

import (
	"os"

	"go.trai.ch/cmakegen/internal/core/domain"
	"go.trai.ch/cmakegen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the settings file at path and applies its manifest section on
// top of base. The result is validated.
func (l *Loader) Load(path string, base domain.ManifestSettings) (domain.ManifestSettings, error) {
	var file Settingsfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.ManifestSettings{}, zerr.With(err, "path", path)
	}

	switch file.Version {
	case domain.SettingsVersion:
	case "":
		l.Logger.Warn("config file " + path + " has no version, assuming " + domain.SettingsVersion)
	default:
		err := zerr.With(domain.ErrInvalidSettings, "version", file.Version)
		return domain.ManifestSettings{}, zerr.With(err, "path", path)
	}

	settings := file.Manifest.apply(base)
	if err := settings.Validate(); err != nil {
		return domain.ManifestSettings{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded settings from " + path)
	return settings, nil
}

func (dto ManifestDTO) apply(s domain.ManifestSettings) domain.ManifestSettings {
	if dto.Header != nil {
		s.Header = *dto.Header
	}
	if dto.CMakeMinimumVersion != nil {
		s.CMakeMinimumVersion = *dto.CMakeMinimumVersion
	}
	if dto.BaseDir != nil {
		s.BaseDir = *dto.BaseDir
	}
	if dto.GeneratedSource != nil {
		s.GeneratedSource = *dto.GeneratedSource
	}
	if dto.Indent != nil {
		s.Indent = *dto.Indent
	}
	return s
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
