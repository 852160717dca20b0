package matchpoints

import "context"

type Repository interface {
	// GetAggregate returns the canonical aggregate row of one match.
	GetAggregate(ctx context.Context, matchID string) (Points, bool, error)
	// ListAggregates returns every aggregate row for the given matches,
	// duplicates included.
	ListAggregates(ctx context.Context, matchIDs []string) ([]Points, error)
}
