// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps such as pinging the
// database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
