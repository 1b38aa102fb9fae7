package ports

import "go.trai.ch/cmakegen/internal/core/domain"

// ConfigLoader defines the interface for loading manifest settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path and applies it on top of base.
	Load(path string, base domain.ManifestSettings) (domain.ManifestSettings, error)
}
