package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	TeamID        string     `db:"team_public_id"`
	Name          string     `db:"name"`
	HandicapIndex float64    `db:"handicap_index"`
	PlayerType    string     `db:"player_type"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type matchTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	MatchDate    time.Time  `db:"match_date"`
	WeekNumber   int        `db:"week_number"`
	HomeTeamID   string     `db:"home_team_public_id"`
	AwayTeamID   string     `db:"away_team_public_id"`
	StartingHole int        `db:"starting_hole"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type matchScoreRow struct {
	ID          int64     `db:"id"`
	MatchID     string    `db:"match_public_id"`
	PlayerID    string    `db:"player_public_id"`
	Hole        int       `db:"hole"`
	Score       int       `db:"score"`
	UpdatedAt   time.Time `db:"updated_at"`
	MatchStatus string    `db:"match_status"`
}

type matchPointsTableModel struct {
	ID         int64         `db:"id"`
	MatchID    string        `db:"match_public_id"`
	TeamID     string        `db:"team_public_id"`
	Hole       sql.NullInt64 `db:"hole"`
	HomePoints float64       `db:"home_points"`
	AwayPoints float64       `db:"away_points"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}
