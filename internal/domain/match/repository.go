package match

import "context"

// Repository exposes match read operations.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	ListDecided(ctx context.Context) ([]Match, error)
}
