package buildinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmakegen/internal/core/ports"
)

// NodeID is the unique identifier for the build info decoder Graft node.
const NodeID graft.ID = "adapter.build_info_decoder"

func init() {
	graft.Register(graft.Node[ports.BuildInfoDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoDecoder, error) {
			return NewDecoder(), nil
		},
	})
}
