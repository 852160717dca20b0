package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/golf-league/internal/usecase"
)

type listPlayersQuery struct {
	Type string `query:"type" validate:"omitempty,max=32"`
}

type listMatchesQuery struct {
	Week   int    `query:"week" validate:"omitempty,min=1,max=104"`
	Status string `query:"status" validate:"omitempty,max=32"`
}

type roundRobinQuery struct {
	StartWeek int `query:"start_week" validate:"min=1,max=104"`
}

type matchPointsPath struct {
	MatchID string `query:"matchID" validate:"required,max=64"`
}

func parseIntQuery(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}
