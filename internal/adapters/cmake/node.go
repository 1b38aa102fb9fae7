package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmakegen/internal/core/ports"
)

// NodeID is the unique identifier for the manifest renderer Graft node.
const NodeID graft.ID = "adapter.manifest_renderer"

func init() {
	graft.Register(graft.Node[ports.ManifestRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
