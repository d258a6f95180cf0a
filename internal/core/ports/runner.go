package ports

import (
	"context"

	"go.trai.ch/reroot/internal/core/domain"
)

// Runner executes external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd and waits for it to finish.
	// It returns an error if the command cannot be started or exits non-zero.
	Run(ctx context.Context, cmd domain.Command) error
}
