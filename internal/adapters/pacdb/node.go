package pacdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/core/ports"
)

// NodeID is the graft identifier of the index opener.
const NodeID graft.ID = "adapter.pacdb"

func init() {
	graft.Register(graft.Node[ports.IndexOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexOpener, error) {
			return NewOpener(), nil
		},
	})
}
