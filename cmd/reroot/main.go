//go:build linux

// Package main is the entry point for reroot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/reroot/cmd/reroot/commands"
	"go.trai.ch/reroot/internal/app"
	"go.trai.ch/reroot/internal/core/domain"
	_ "go.trai.ch/reroot/internal/wiring"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := app.NewApp(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Role. Only the operator's own invocation has a command line worth parsing; the
	// others are started by the kernel or by init with arguments meant for init.
	phase, obs, err := components.App.Phase()
	if err != nil && !obs.IsPID1 {
		components.Logger.Error(err)
		return 1
	}
	if err != nil {
		components.Logger.Error(err)
		phase = domain.PhaseUnknown
	}

	if phase != domain.PhaseBootstrap {
		if err := components.App.Handoff(ctx, phase, obs, args); err != nil {
			components.Logger.Error(err)
			return 1
		}
		return 0
	}

	// 3. Interface - CLI
	cli := commands.New(components.App)
	if len(args) > 0 {
		cli.SetArgs(args[1:])
	}

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
