package ports

import "go.trai.ch/cmakegen/internal/core/domain"

// ManifestRenderer defines the interface for turning a manifest into build
// description text.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ManifestRenderer interface {
	Render(m domain.Manifest, settings domain.ManifestSettings) ([]byte, error)
}
