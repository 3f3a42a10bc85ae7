// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single OnStart or OnStop hook.
	DefaultTimeout = 10 * time.Second
	// ShutdownTimeout bounds graceful shutdown of a delivery.
	ShutdownTimeout = 15 * time.Second
)
