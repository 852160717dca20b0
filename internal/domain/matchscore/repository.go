package matchscore

import "context"

type Repository interface {
	ListForDecidedMatches(ctx context.Context) ([]Score, error)
}
