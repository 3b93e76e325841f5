// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of infrastructure
// components (database ping, HTTP server drain, publisher close).
const DefaultTimeout = 30 * time.Second
