// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pacforge/internal/adapters/config"
	_ "go.trai.ch/pacforge/internal/adapters/logger"
	_ "go.trai.ch/pacforge/internal/adapters/metrics"
	_ "go.trai.ch/pacforge/internal/adapters/remote"
	_ "go.trai.ch/pacforge/internal/adapters/shell"
	_ "go.trai.ch/pacforge/internal/adapters/sqlite"
	_ "go.trai.ch/pacforge/internal/adapters/telemetry"
	// Register built-in triggers.
	_ "go.trai.ch/pacforge/internal/adapters/triggers/events"
	_ "go.trai.ch/pacforge/internal/adapters/triggers/metrics"
	_ "go.trai.ch/pacforge/internal/adapters/triggers/notify"
	_ "go.trai.ch/pacforge/internal/adapters/triggers/report"
	// Register app nodes.
	_ "go.trai.ch/pacforge/internal/app"
)
