package orm

import (
	"time"

	"gorm.io/gorm"
)

// Team maps the teams table. The numeric ID stays internal; every other
// table references rows by PublicID.
type Team struct {
	ID        int64          `gorm:"column:id;primaryKey"`
	PublicID  string         `gorm:"column:public_id;not null;uniqueIndex"`
	Name      string         `gorm:"column:name;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (Team) TableName() string { return "teams" }

type Player struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	PublicID      string         `gorm:"column:public_id;not null;uniqueIndex"`
	TeamPublicID  string         `gorm:"column:team_public_id;not null"`
	Name          string         `gorm:"column:name;not null"`
	HandicapIndex float64        `gorm:"column:handicap_index;type:numeric(4,1)"`
	PlayerType    string         `gorm:"column:player_type;not null"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (Player) TableName() string { return "players" }

type Match struct {
	ID               int64          `gorm:"column:id;primaryKey"`
	PublicID         string         `gorm:"column:public_id;not null;uniqueIndex"`
	MatchDate        time.Time      `gorm:"column:match_date;not null"`
	WeekNumber       int            `gorm:"column:week_number;not null"`
	HomeTeamPublicID string         `gorm:"column:home_team_public_id;not null"`
	AwayTeamPublicID string         `gorm:"column:away_team_public_id;not null"`
	StartingHole     int            `gorm:"column:starting_hole;not null"`
	Status           string         `gorm:"column:status;not null"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (Match) TableName() string { return "matches" }

type MatchScore struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	MatchPublicID  string    `gorm:"column:match_public_id;not null"`
	PlayerPublicID string    `gorm:"column:player_public_id;not null"`
	Hole           int       `gorm:"column:hole;not null"`
	Score          int       `gorm:"column:score;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (MatchScore) TableName() string { return "match_scores" }

// MatchPoints rows with a nil Hole carry the whole-match split.
type MatchPoints struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	MatchPublicID string    `gorm:"column:match_public_id;not null"`
	TeamPublicID  string    `gorm:"column:team_public_id;not null"`
	Hole          *int      `gorm:"column:hole"`
	HomePoints    float64   `gorm:"column:home_points;type:numeric(5,2)"`
	AwayPoints    float64   `gorm:"column:away_points;type:numeric(5,2)"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (MatchPoints) TableName() string { return "match_points" }
