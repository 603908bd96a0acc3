package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTx runs fn inside a single database transaction. Repository calls made with the
	// context handed to fn join that transaction. The transaction commits when fn returns nil
	// and rolls back when fn returns an error or panics.
	WithinTx(ctx context.Context, readOnly bool, fn func(ctx context.Context) error) error
}
