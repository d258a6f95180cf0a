package acquire

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/adapters/archive"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/fetch"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/core/ports"
)

// NodeID is the unique identifier for the acquisition pipeline Graft node.
const NodeID graft.ID = "engine.acquire"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			fs.HasherNodeID,
			archive.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fetcher, hasher, extractor, telemetry, log), nil
		},
	})
}
