package httpapi

import (
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/domain/matchpoints"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/standing"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

type warningDTO struct {
	Kind     string `json:"kind"`
	MatchID  string `json:"matchId,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
	Message  string `json:"message"`
}

type weeklyPointsDTO struct {
	WeekNumber   int     `json:"weekNumber"`
	MatchID      string  `json:"matchId"`
	OpponentID   string  `json:"opponentId"`
	OpponentName string  `json:"opponentName"`
	Points       float64 `json:"points"`
	Result       string  `json:"result"`
}

type teamStandingDTO struct {
	Position      int               `json:"position"`
	TeamID        string            `json:"teamId"`
	TeamName      string            `json:"teamName"`
	MatchesPlayed int               `json:"matchesPlayed"`
	MatchesWon    int               `json:"matchesWon"`
	MatchesLost   int               `json:"matchesLost"`
	MatchesTied   int               `json:"matchesTied"`
	LeaguePoints  float64           `json:"leaguePoints"`
	WeeklyPoints  []weeklyPointsDTO `json:"weeklyPoints"`
	WinPercentage float64           `json:"winPercentage"`
}

type teamStandingsDTO struct {
	Standings []teamStandingDTO `json:"standings"`
	Warnings  []warningDTO      `json:"warnings"`
}

type playerStandingDTO struct {
	Position        int     `json:"position"`
	PlayerID        string  `json:"playerId"`
	PlayerName      string  `json:"playerName"`
	TeamID          string  `json:"teamId"`
	HandicapIndex   float64 `json:"handicapIndex"`
	CourseHandicap  int     `json:"courseHandicap"`
	TotalGrossScore int     `json:"totalGrossScore"`
	TotalNetScore   int     `json:"totalNetScore"`
	MatchesPlayed   int     `json:"matchesPlayed"`
	RoundsPlayed    int     `json:"roundsPlayed"`
	PartialRounds   int     `json:"partialRounds"`
	HolesPlayed     int     `json:"holesPlayed"`
	AverageNetScore float64 `json:"averageNetScore"`
}

type playerStandingsDTO struct {
	Standings []playerStandingDTO `json:"standings"`
	Warnings  []warningDTO        `json:"warnings"`
}

type dataQualityDTO struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Total       int            `json:"total"`
	Counts      map[string]int `json:"counts"`
	Warnings    []warningDTO   `json:"warnings"`
}

type teamDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type playerDTO struct {
	ID            string  `json:"id"`
	TeamID        string  `json:"teamId"`
	Name          string  `json:"name"`
	HandicapIndex float64 `json:"handicapIndex"`
	Type          string  `json:"playerType"`
}

type matchDTO struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"matchDate"`
	WeekNumber   int       `json:"weekNumber"`
	HomeTeamID   string    `json:"homeTeamId"`
	AwayTeamID   string    `json:"awayTeamId"`
	StartingHole int       `json:"startingHole"`
	Status       string    `json:"status"`
}

type matchPointsDTO struct {
	MatchID    string    `json:"matchId"`
	TeamID     string    `json:"teamId"`
	HomePoints float64   `json:"homePoints"`
	AwayPoints float64   `json:"awayPoints"`
	Total      float64   `json:"total"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type fixtureDTO struct {
	WeekNumber   int    `json:"weekNumber"`
	HomeTeamID   string `json:"homeTeamId"`
	HomeTeamName string `json:"homeTeamName,omitempty"`
	AwayTeamID   string `json:"awayTeamId,omitempty"`
	AwayTeamName string `json:"awayTeamName,omitempty"`
	Bye          bool   `json:"bye"`
}

func warningsToDTO(items []standing.Warning) []warningDTO {
	out := make([]warningDTO, 0, len(items))
	for _, w := range items {
		out = append(out, warningDTO{
			Kind:     string(w.Kind),
			MatchID:  w.MatchID,
			TeamID:   w.TeamID,
			PlayerID: w.PlayerID,
			Message:  w.Message,
		})
	}
	return out
}

func teamStandingsToDTO(result standing.TeamResult) teamStandingsDTO {
	rows := make([]teamStandingDTO, 0, len(result.Standings))
	for _, row := range result.Standings {
		weekly := make([]weeklyPointsDTO, 0, len(row.WeeklyPoints))
		for _, w := range row.WeeklyPoints {
			weekly = append(weekly, weeklyPointsDTO{
				WeekNumber:   w.WeekNumber,
				MatchID:      w.MatchID,
				OpponentID:   w.OpponentID,
				OpponentName: w.OpponentName,
				Points:       w.Points,
				Result:       string(w.Result),
			})
		}
		rows = append(rows, teamStandingDTO{
			Position:      row.Position,
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			MatchesPlayed: row.MatchesPlayed,
			MatchesWon:    row.MatchesWon,
			MatchesLost:   row.MatchesLost,
			MatchesTied:   row.MatchesTied,
			LeaguePoints:  row.LeaguePoints,
			WeeklyPoints:  weekly,
			WinPercentage: row.WinPercentage,
		})
	}
	return teamStandingsDTO{Standings: rows, Warnings: warningsToDTO(result.Warnings)}
}

func playerStandingsToDTO(result standing.PlayerResult) playerStandingsDTO {
	rows := make([]playerStandingDTO, 0, len(result.Standings))
	for _, row := range result.Standings {
		rows = append(rows, playerStandingDTO{
			Position:        row.Position,
			PlayerID:        row.PlayerID,
			PlayerName:      row.PlayerName,
			TeamID:          row.TeamID,
			HandicapIndex:   row.HandicapIndex,
			CourseHandicap:  row.CourseHandicap,
			TotalGrossScore: row.TotalGrossScore,
			TotalNetScore:   row.TotalNetScore,
			MatchesPlayed:   row.MatchesPlayed,
			RoundsPlayed:    row.RoundsPlayed,
			PartialRounds:   row.PartialRounds,
			HolesPlayed:     row.HolesPlayed,
			AverageNetScore: row.AverageNetScore,
		})
	}
	return playerStandingsDTO{Standings: rows, Warnings: warningsToDTO(result.Warnings)}
}

func dataQualityToDTO(report usecase.DataQualityReport) dataQualityDTO {
	counts := make(map[string]int, len(report.Counts))
	for kind, n := range report.Counts {
		counts[string(kind)] = n
	}
	return dataQualityDTO{
		GeneratedAt: report.GeneratedAt,
		Total:       report.Total,
		Counts:      counts,
		Warnings:    warningsToDTO(report.Warnings),
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		TeamID:        p.TeamID,
		Name:          p.Name,
		HandicapIndex: p.HandicapIndex,
		Type:          string(p.Type),
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		Date:         m.Date,
		WeekNumber:   m.WeekNumber,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		StartingHole: m.StartingHole,
		Status:       string(m.Status),
	}
}

func matchPointsToDTO(p matchpoints.Points) matchPointsDTO {
	return matchPointsDTO{
		MatchID:    p.MatchID,
		TeamID:     p.TeamID,
		HomePoints: p.HomePoints,
		AwayPoints: p.AwayPoints,
		Total:      p.Total(),
		UpdatedAt:  p.UpdatedAt,
	}
}

func fixtureToDTO(f usecase.Fixture) fixtureDTO {
	return fixtureDTO{
		WeekNumber:   f.WeekNumber,
		HomeTeamID:   f.HomeTeamID,
		HomeTeamName: f.HomeTeamName,
		AwayTeamID:   f.AwayTeamID,
		AwayTeamName: f.AwayTeamName,
		Bye:          f.Bye,
	}
}
