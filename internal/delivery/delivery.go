// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by the application entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}
