package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/core/ports"
)

// NodeID is the graft identifier of the artifact cache opener.
const NodeID graft.ID = "adapter.artifact_cache"

func init() {
	graft.Register(graft.Node[ports.CacheOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheOpener, error) {
			return NewOpener(), nil
		},
	})
}
