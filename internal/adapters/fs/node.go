package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/core/ports"
)

// Graft identifiers of the file system adapters.
const (
	WalkerNodeID graft.ID = "adapter.fs.walker"
	HasherNodeID graft.ID = "adapter.fs.hasher"
	MergerNodeID graft.ID = "adapter.fs.merger"
)

func init() {
	// Walker Node (Concrete implementation needed by Merger)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeMerger]{
		ID:        MergerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.TreeMerger, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewMerger(walker), nil
		},
	})
}
