package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/adapters/logger"
	"go.trai.ch/reroot/internal/adapters/shell"
	"go.trai.ch/reroot/internal/adapters/telemetry/progrock"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	var console bytes.Buffer
	recorder := progrock.New(logger.NewWithWriter(&console))
	require.NotNil(t, recorder)

	ctx, vertex := recorder.Record(context.Background(), "fetch pacman-6.1.0-3-x86_64.pkg.tar.zst")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("downloading\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelWarn, "mirror slow")
	vertex.Complete(nil)

	_, cached := recorder.Record(context.Background(), "fetch bash-5.2.026-2-x86_64.pkg.tar.zst", ports.WithInternal())
	cached.Log(domain.LogLevelDebug, "dropped")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(context.Background(), "extract glibc")
	failed.Complete(errors.New("tar failed"))

	total, hits, failures := recorder.Summary()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, failures)

	require.NoError(t, recorder.Close())
	assert.Contains(t, console.String(), "3 steps (1 cached, 1 failed)")

	require.NoError(t, recorder.Close())
	assert.Equal(t, 1, bytes.Count(console.Bytes(), []byte("steps (")))
}

func TestRecorder_CommandOutputReachesConsole(t *testing.T) {
	var console bytes.Buffer
	log := logger.NewWithWriter(&console)
	recorder := progrock.New(log)

	ctx, vertex := recorder.Record(context.Background(), "install packages")
	err := shell.NewRunner(log).Run(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo resolving dependencies; echo 'warning: keyring is stale' >&2"},
	})
	vertex.Complete(err)
	require.NoError(t, err)
	require.NoError(t, recorder.Close())

	out := console.String()
	assert.Contains(t, out, "resolving dependencies")
	assert.Contains(t, out, "warning: keyring is stale")
}

func TestRecorder_CloseWithoutSteps(t *testing.T) {
	var console bytes.Buffer
	recorder := progrock.New(logger.NewWithWriter(&console))

	require.NoError(t, recorder.Close())
	assert.Empty(t, console.String())
}
