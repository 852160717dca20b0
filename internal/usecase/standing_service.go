package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/golf-league/internal/domain/handicap"
	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	"github.com/riskibarqy/golf-league/internal/domain/matchscore"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/standing"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/metrics"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

// StandingRepositories groups the read-only stores the standings fold over.
type StandingRepositories struct {
	Teams   team.Repository
	Players player.Repository
	Matches match.Repository
	Scores  matchscore.Repository
	Points  matchpoints.Repository
}

// DataQualityReport merges the warnings of both standings computations.
type DataQualityReport struct {
	GeneratedAt time.Time
	Total       int
	Counts      map[standing.WarningKind]int
	Warnings    []standing.Warning
}

// StandingService recomputes standings from the stores on every call. Nothing
// computed here is cached.
type StandingService struct {
	repos    StandingRepositories
	course   handicap.Course
	policy   standing.Policy
	recorder metrics.Recorder
	logger   *logging.Logger
	now      func() time.Time
}

func NewStandingService(
	repos StandingRepositories,
	course handicap.Course,
	policy standing.Policy,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *StandingService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingService{
		repos:    repos,
		course:   course,
		policy:   policy,
		recorder: recorder,
		logger:   logger.Named("standing"),
		now:      time.Now,
	}
}

func (s *StandingService) ListTeamStandings(ctx context.Context) (standing.TeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingService", "ListTeamStandings")
	defer span.End()

	started := s.now()
	in, err := s.loadTeamInput(ctx)
	if err != nil {
		return standing.TeamResult{}, s.fail(ctx, span, metrics.KindTeams, err)
	}

	result := standing.ComputeTeamStandings(in, s.policy)
	s.report(ctx, span, metrics.KindTeams, result.Warnings, started)
	span.SetAttributes(
		attribute.Int("standing.teams", len(result.Standings)),
		attribute.Int("standing.matches", len(in.Matches)),
	)
	return result, nil
}

func (s *StandingService) ListPlayerStandings(ctx context.Context) (standing.PlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingService", "ListPlayerStandings")
	defer span.End()

	started := s.now()
	in, err := s.loadPlayerInput(ctx)
	if err != nil {
		return standing.PlayerResult{}, s.fail(ctx, span, metrics.KindPlayers, err)
	}

	result := standing.ComputePlayerStandings(in, s.course)
	s.report(ctx, span, metrics.KindPlayers, result.Warnings, started)
	span.SetAttributes(
		attribute.Int("standing.players", len(result.Standings)),
		attribute.Int("standing.scores", len(in.Scores)),
	)
	return result, nil
}

// DataQualityReport runs both folds and returns only their warnings.
func (s *StandingService) DataQualityReport(ctx context.Context) (DataQualityReport, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingService", "DataQualityReport")
	defer span.End()

	started := s.now()
	teamIn, playerIn, err := s.loadReportInputs(ctx)
	if err != nil {
		return DataQualityReport{}, s.fail(ctx, span, metrics.KindDataQuality, err)
	}

	warnings := append(
		standing.ComputeTeamStandings(teamIn, s.policy).Warnings,
		standing.ComputePlayerStandings(playerIn, s.course).Warnings...,
	)
	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Kind != warnings[j].Kind {
			return warnings[i].Kind < warnings[j].Kind
		}
		return warnings[i].MatchID < warnings[j].MatchID
	})

	s.recorder.ObserveComputation(metrics.KindDataQuality, s.now().Sub(started))
	span.SetAttributes(attribute.Int("standing.warnings", len(warnings)))

	return DataQualityReport{
		GeneratedAt: s.now().UTC(),
		Total:       len(warnings),
		Counts:      standing.CountByKind(warnings),
		Warnings:    warnings,
	}, nil
}

func (s *StandingService) loadTeamInput(ctx context.Context) (standing.TeamInput, error) {
	var in standing.TeamInput

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.listTeams(ctx)
		in.Teams = teams
		return err
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.listDecided(ctx)
		if err != nil {
			return err
		}
		in.Matches = matches
		in.Points, err = s.listAggregates(ctx, matches)
		return err
	})
	if err := p.Wait(); err != nil {
		return standing.TeamInput{}, err
	}
	return in, nil
}

func (s *StandingService) loadPlayerInput(ctx context.Context) (standing.PlayerInput, error) {
	var in standing.PlayerInput

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		players, err := s.listPrimaryPlayers(ctx)
		in.Players = players
		return err
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.listDecided(ctx)
		in.Matches = matches
		return err
	})
	p.Go(func(ctx context.Context) error {
		scores, err := s.listScores(ctx)
		in.Scores = scores
		return err
	})
	if err := p.Wait(); err != nil {
		return standing.PlayerInput{}, err
	}
	return in, nil
}

// loadReportInputs reads the decided set once and hands the same slice to
// both folds, so a match finalized mid-request lands in neither half.
func (s *StandingService) loadReportInputs(ctx context.Context) (standing.TeamInput, standing.PlayerInput, error) {
	decided, err := s.listDecided(ctx)
	if err != nil {
		return standing.TeamInput{}, standing.PlayerInput{}, err
	}
	teamIn := standing.TeamInput{Matches: decided}
	playerIn := standing.PlayerInput{Matches: decided}

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.listTeams(ctx)
		teamIn.Teams = teams
		return err
	})
	p.Go(func(ctx context.Context) error {
		points, err := s.listAggregates(ctx, decided)
		teamIn.Points = points
		return err
	})
	p.Go(func(ctx context.Context) error {
		players, err := s.listPrimaryPlayers(ctx)
		playerIn.Players = players
		return err
	})
	p.Go(func(ctx context.Context) error {
		scores, err := s.listScores(ctx)
		playerIn.Scores = scores
		return err
	})
	if err := p.Wait(); err != nil {
		return standing.TeamInput{}, standing.PlayerInput{}, err
	}
	return teamIn, playerIn, nil
}

func (s *StandingService) listTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.repos.Teams.List(ctx)
	if err != nil {
		return nil, dependencyError(err, "list teams")
	}
	return teams, nil
}

func (s *StandingService) listPrimaryPlayers(ctx context.Context) ([]player.Player, error) {
	players, err := s.repos.Players.ListPrimary(ctx)
	if err != nil {
		return nil, dependencyError(err, "list primary players")
	}
	return players, nil
}

func (s *StandingService) listDecided(ctx context.Context) ([]match.Match, error) {
	matches, err := s.repos.Matches.ListDecided(ctx)
	if err != nil {
		return nil, dependencyError(err, "list decided matches")
	}
	return matches, nil
}

func (s *StandingService) listScores(ctx context.Context) ([]matchscore.Score, error) {
	scores, err := s.repos.Scores.ListForDecidedMatches(ctx)
	if err != nil {
		return nil, dependencyError(err, "list scores for decided matches")
	}
	return scores, nil
}

func (s *StandingService) listAggregates(ctx context.Context, matches []match.Match) ([]matchpoints.Points, error) {
	if len(matches) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	points, err := s.repos.Points.ListAggregates(ctx, ids)
	if err != nil {
		return nil, dependencyError(err, "list aggregate match points")
	}
	return points, nil
}

func (s *StandingService) report(ctx context.Context, span trace.Span, kind string, warnings []standing.Warning, started time.Time) {
	for warningKind, count := range standing.CountByKind(warnings) {
		s.recorder.AddWarnings(string(warningKind), count)
	}
	for _, w := range warnings {
		s.logger.WarnContext(ctx, "standings data quality warning",
			"computation", kind,
			"kind", string(w.Kind),
			"match_id", w.MatchID,
			"team_id", w.TeamID,
			"player_id", w.PlayerID,
			"detail", w.Message,
		)
	}

	elapsed := s.now().Sub(started)
	s.recorder.ObserveComputation(kind, elapsed)
	span.SetAttributes(attribute.Int("standing.warnings", len(warnings)))
	s.logger.DebugContext(ctx, "standings computed", "computation", kind, "warnings", len(warnings), "elapsed", elapsed)
}

func (s *StandingService) fail(ctx context.Context, span trace.Span, kind string, err error) error {
	s.recorder.IncFailure(kind)
	span.RecordError(err)
	span.SetStatus(codes.Error, "standings store read failed")
	s.logger.ErrorContext(ctx, "standings computation aborted", "computation", kind, "error", err)
	return err
}
