// Package transactor lets repository code run several statements atomically
// without binding callers to pgx transaction handling.
package transactor

import (
	"context"
)

// Transactor runs the provided function within a database transaction,
// committing on nil error and rolling back otherwise
type Transactor interface {
	WithinTransaction(context.Context, func(ctx context.Context) error) error
}
