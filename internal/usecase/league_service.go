package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/schedule"
	"github.com/riskibarqy/golf-league/internal/domain/team"
)

// Fixture is a generated pairing with team names resolved for display.
type Fixture struct {
	WeekNumber   int
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	Bye          bool
}

type LeagueService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewLeagueService(teamRepo team.Repository, playerRepo player.Repository) *LeagueService {
	return &LeagueService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *LeagueService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService", "ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, dependencyError(err, "list teams")
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
	})
	return teams, nil
}

// ListPlayers returns the roster, optionally narrowed to one player type.
// An empty playerType means every player.
func (s *LeagueService) ListPlayers(ctx context.Context, playerType string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService", "ListPlayers")
	defer span.End()

	playerType = strings.TrimSpace(playerType)
	if playerType == "" {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return nil, dependencyError(err, "list players")
		}
		return players, nil
	}

	kind, err := player.ParseType(playerType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if kind == player.TypePrimary {
		players, err := s.playerRepo.ListPrimary(ctx)
		if err != nil {
			return nil, dependencyError(err, "list primary players")
		}
		return players, nil
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, dependencyError(err, "list players")
	}
	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if p.Type == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

// PreviewRoundRobin builds a single round-robin over the current teams. The
// result is not persisted.
func (s *LeagueService) PreviewRoundRobin(ctx context.Context, startWeek int) ([]Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService", "PreviewRoundRobin")
	defer span.End()

	if startWeek < 1 {
		return nil, fmt.Errorf("%w: start week must be >= 1", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, dependencyError(err, "list teams")
	}

	pairings, err := schedule.RoundRobin(teams, startWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	out := make([]Fixture, 0, len(pairings))
	for _, p := range pairings {
		out = append(out, Fixture{
			WeekNumber:   p.WeekNumber,
			HomeTeamID:   p.HomeTeamID,
			HomeTeamName: names[p.HomeTeamID],
			AwayTeamID:   p.AwayTeamID,
			AwayTeamName: names[p.AwayTeamID],
			Bye:          p.IsBye(),
		})
	}
	return out, nil
}
