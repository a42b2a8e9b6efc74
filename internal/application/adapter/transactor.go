// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Transactor runs a unit of work atomically.
type Transactor interface {
	// WithinTransaction runs fn in a single transaction, committed when fn returns nil.
	// Repository calls made with the context passed to fn join the transaction.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
