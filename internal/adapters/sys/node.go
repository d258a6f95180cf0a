//go:build linux

package sys

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reroot/internal/core/ports"
)

// Graft identifiers of the host adapters.
const (
	MounterNodeID graft.ID = "adapter.sys.mounter"
	ProcessNodeID graft.ID = "adapter.sys.process"
	ProbeNodeID   graft.ID = "adapter.sys.probe"
)

func init() {
	graft.Register(graft.Node[ports.Mounter]{
		ID:        MounterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Mounter, error) {
			return NewMounter(), nil
		},
	})

	graft.Register(graft.Node[ports.Process]{
		ID:        ProcessNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Process, error) {
			return NewProcess(), nil
		},
	})

	graft.Register(graft.Node[ports.Probe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Probe, error) {
			return NewProbe(), nil
		},
	})
}
