// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cmakegen/internal/adapters/buildinfo"
	_ "go.trai.ch/cmakegen/internal/adapters/cmake"
	_ "go.trai.ch/cmakegen/internal/adapters/config"
	_ "go.trai.ch/cmakegen/internal/adapters/fs"
	_ "go.trai.ch/cmakegen/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/cmakegen/internal/app"
)
