//go:build linux

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reroot/internal/adapters/archive"
	_ "go.trai.ch/reroot/internal/adapters/cas"
	_ "go.trai.ch/reroot/internal/adapters/config"
	_ "go.trai.ch/reroot/internal/adapters/fetch"
	_ "go.trai.ch/reroot/internal/adapters/fs"
	_ "go.trai.ch/reroot/internal/adapters/logger"
	_ "go.trai.ch/reroot/internal/adapters/pacdb"
	_ "go.trai.ch/reroot/internal/adapters/pacman"
	_ "go.trai.ch/reroot/internal/adapters/shell"
	_ "go.trai.ch/reroot/internal/adapters/sys"
	_ "go.trai.ch/reroot/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/reroot/internal/app"
	_ "go.trai.ch/reroot/internal/engine/acquire"
	_ "go.trai.ch/reroot/internal/engine/migration"
)
