package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// dependencyError keeps the store failure as the cause and marks it so callers
// can map it to a retryable response.
func dependencyError(err error, op string) error {
	return crerr.Mark(crerr.Wrap(err, op), ErrDependencyUnavailable)
}
