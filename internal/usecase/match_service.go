package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
)

type MatchService struct {
	matchRepo  match.Repository
	pointsRepo matchpoints.Repository
}

func NewMatchService(matchRepo match.Repository, pointsRepo matchpoints.Repository) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		pointsRepo: pointsRepo,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "ListMatches")
	defer span.End()

	if filter.WeekNumber < 0 {
		return nil, fmt.Errorf("%w: week must be >= 1", ErrInvalidInput)
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, dependencyError(err, "list matches")
	}
	return items, nil
}

// GetAggregatePoints returns the canonical whole-match points row.
func (s *MatchService) GetAggregatePoints(ctx context.Context, matchID string) (matchpoints.Points, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService", "GetAggregatePoints")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return matchpoints.Points{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	points, found, err := s.pointsRepo.GetAggregate(ctx, matchID)
	if err != nil {
		return matchpoints.Points{}, dependencyError(err, "get aggregate match points")
	}
	if !found {
		return matchpoints.Points{}, fmt.Errorf("%w: aggregate points for match=%s", ErrNotFound, matchID)
	}
	return points, nil
}
