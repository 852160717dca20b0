package orm

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

const (
	defaultWorkers    = 4
	scoreBatchSize    = 100
	truncateStatement = "TRUNCATE TABLE match_points, match_scores, matches, players, teams RESTART IDENTITY"
)

type ConnectionConfig struct {
	DSN          string
	MaxOpenConns int
	Verbose      bool
}

// Open connects through the pgx-backed gorm dialector. Prepared statements stay
// off so the connection works behind pgbouncer in transaction mode.
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Error
	if cfg.Verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

type SeedOptions struct {
	// Truncate wipes every league table before writing.
	Truncate bool
	Workers  int
}

type SeedResult struct {
	Teams   int
	Players int
	Matches int
	Scores  int
	Points  int
}

type Seeder struct {
	db     *gorm.DB
	logger *logging.Logger
}

func NewSeeder(db *gorm.DB, logger *logging.Logger) *Seeder {
	if logger == nil {
		logger = logging.Default()
	}
	return &Seeder{db: db, logger: logger.Named("seeder")}
}

// Seed writes the roster and schedule in one transaction, then inserts each
// match's scorecards on a worker pool and finally the match points. Points go
// last so a reader never sees a split for a match whose scores are missing.
func (s *Seeder) Seed(ctx context.Context, data Dataset, opts SeedOptions) (SeedResult, error) {
	if s.db == nil {
		return SeedResult{}, fmt.Errorf("seeder database is nil")
	}
	db := s.db.WithContext(ctx)

	err := db.Transaction(func(tx *gorm.DB) error {
		if opts.Truncate {
			if err := tx.Exec(truncateStatement).Error; err != nil {
				return fmt.Errorf("truncate league tables: %w", err)
			}
			s.logger.InfoContext(ctx, "league tables truncated")
		}
		if len(data.Teams) > 0 {
			if err := tx.Create(&data.Teams).Error; err != nil {
				return fmt.Errorf("insert teams: %w", err)
			}
		}
		if len(data.Players) > 0 {
			if err := tx.Create(&data.Players).Error; err != nil {
				return fmt.Errorf("insert players: %w", err)
			}
		}
		if len(data.Matches) > 0 {
			if err := tx.Create(&data.Matches).Error; err != nil {
				return fmt.Errorf("insert matches: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	scores, err := s.insertScores(ctx, data.Scores, opts.Workers)
	if err != nil {
		return SeedResult{}, err
	}

	if len(data.Points) > 0 {
		if err := db.Create(&data.Points).Error; err != nil {
			return SeedResult{}, fmt.Errorf("insert match points: %w", err)
		}
	}

	result := SeedResult{
		Teams:   len(data.Teams),
		Players: len(data.Players),
		Matches: len(data.Matches),
		Scores:  scores,
		Points:  len(data.Points),
	}
	s.logger.InfoContext(ctx, "league seeded",
		"teams", result.Teams,
		"players", result.Players,
		"matches", result.Matches,
		"scores", result.Scores,
		"points", result.Points,
	)
	return result, nil
}

func (s *Seeder) insertScores(ctx context.Context, byMatch map[string][]MatchScore, workers int) (int, error) {
	if len(byMatch) == 0 {
		return 0, nil
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	matchIDs := make([]string, 0, len(byMatch))
	for matchID := range byMatch {
		matchIDs = append(matchIDs, matchID)
	}
	sort.Strings(matchIDs)

	logger := s.logger.With("workers", workers, "matches", len(matchIDs))
	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
		errs     error
	)
	for _, matchID := range matchIDs {
		matchID := matchID
		rows := byMatch[matchID]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			start := time.Now()
			err := s.db.WithContext(ctx).CreateInBatches(&rows, scoreBatchSize).Error

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = crerr.CombineErrors(errs, crerr.Wrapf(err, "insert scores for match %s", matchID))
				return
			}
			inserted += len(rows)
			logger.DebugContext(ctx, "match scores inserted",
				"match_id", matchID,
				"rows", len(rows),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return 0, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	wg.Wait()
	if errs != nil {
		return inserted, errs
	}
	return inserted, nil
}
