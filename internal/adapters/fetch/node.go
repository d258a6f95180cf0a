package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/adapters/logger"
	"go.trai.ch/reroot/internal/core/ports"
)

// NodeID is the graft identifier of the HTTP fetcher.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewHTTPFetcher(log), nil
		},
	})
}
