package pacman

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/adapters/shell"
	"go.trai.ch/reroot/internal/core/ports"
)

// NodeID is the graft identifier of the package installer.
const NodeID graft.ID = "adapter.pacman"

func init() {
	graft.Register(graft.Node[ports.PackageInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageInstaller, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(runner), nil
		},
	})
}
