package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/adapters/shell"
	"go.trai.ch/reroot/internal/core/ports"
)

// NodeID is the graft identifier of the archive extractor.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Extractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Extractor, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewTarExtractor(runner), nil
		},
	})
}
