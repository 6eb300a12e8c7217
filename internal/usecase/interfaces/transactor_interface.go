package interfaces

import "context"

// ITransactor runs repository calls as one unit.
//
// WithinTransaction commits every write made through the context passed to fn only when fn
// returns nil. ReadOnly gives fn a consistent view of committed state.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
