// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
