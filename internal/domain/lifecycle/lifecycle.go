// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown operations.
const DefaultTimeout = 10 * time.Second
