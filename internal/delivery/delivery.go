// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is done.
type Delivery interface {
	Serve(ctx context.Context) error
}
