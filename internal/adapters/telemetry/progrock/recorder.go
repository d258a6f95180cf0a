// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/reroot/internal/core/ports"
)

const durationPrecision = 10 * time.Millisecond

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Vertices are recorded onto a tape that is summarized through the logger on Close.
type Recorder struct {
	tape   *progrock.Tape
	rec    *progrock.Recorder
	logger ports.Logger
}

// New creates a new Recorder backed by a fresh tape.
func New(logger ports.Logger) *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		tape:   tape,
		rec:    progrock.NewRecorder(tape),
		logger: logger,
	}
}

// Record starts recording a new vertex. Vertices are keyed by name, so recording the same
// step twice in one run updates a single vertex.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.VertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v, internal: cfg.Internal}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close ends the session and logs how many steps ran, were cached and failed.
func (r *Recorder) Close() error {
	if r.tape.Closed() {
		return nil
	}
	if err := r.tape.Close(); err != nil {
		return err
	}

	if total := r.tape.TotalCount(); total > 0 {
		r.logger.Info(fmt.Sprintf("%d steps (%d cached, %d failed) in %s",
			total, r.tape.CachedCount(), r.tape.ErroredCount(), r.tape.Duration().Round(durationPrecision)))
	}
	return nil
}

// Summary reports the tape's counters.
func (r *Recorder) Summary() (total, cached, failed int) {
	return r.tape.TotalCount(), r.tape.CachedCount(), r.tape.ErroredCount()
}
