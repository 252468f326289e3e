// Package lifecycle holds shared constants for process start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
