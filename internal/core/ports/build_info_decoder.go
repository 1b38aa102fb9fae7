package ports

import (
	"io"

	"go.trai.ch/cmakegen/internal/core/domain"
)

// BuildInfoDecoder defines the interface for decoding a build info document.
//
//go:generate mockgen -source=build_info_decoder.go -destination=mocks/mock_build_info_decoder.go -package=mocks
type BuildInfoDecoder interface {
	// Decode reads the whole of r and returns the build info it describes.
	Decode(r io.Reader) (domain.BuildInfo, error)
}
