// Package lifecycle holds shared values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
