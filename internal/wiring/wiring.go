// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lily/internal/adapters/config"
	_ "go.trai.ch/lily/internal/adapters/fs"
	_ "go.trai.ch/lily/internal/adapters/logger"
	_ "go.trai.ch/lily/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/lily/internal/app"
)
