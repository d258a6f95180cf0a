//go:build linux

package migration

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/pacdb"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/pacman"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/sys"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/reroot/internal/engine/acquire"
)

// NodeID is the unique identifier for the migration machine Graft node.
const NodeID graft.ID = "engine.migration"

func init() {
	graft.Register(graft.Node[*Machine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sys.ProbeNodeID,
			sys.MounterNodeID,
			fs.MergerNodeID,
			pacman.NodeID,
			pacdb.NodeID,
			cas.NodeID,
			acquire.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Machine, error) {
			var deps Deps
			var err error

			if deps.Probe, err = graft.Dep[ports.Probe](ctx); err != nil {
				return nil, err
			}
			if deps.Mounter, err = graft.Dep[ports.Mounter](ctx); err != nil {
				return nil, err
			}
			if deps.Merger, err = graft.Dep[ports.TreeMerger](ctx); err != nil {
				return nil, err
			}
			if deps.Installer, err = graft.Dep[ports.PackageInstaller](ctx); err != nil {
				return nil, err
			}
			if deps.Indexes, err = graft.Dep[ports.IndexOpener](ctx); err != nil {
				return nil, err
			}
			if deps.Caches, err = graft.Dep[ports.CacheOpener](ctx); err != nil {
				return nil, err
			}
			if deps.Acquirer, err = graft.Dep[*acquire.Pipeline](ctx); err != nil {
				return nil, err
			}
			if deps.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
				return nil, err
			}
			if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
				return nil, err
			}

			return New(deps, domain.DefaultLayout()), nil
		},
	})
}
