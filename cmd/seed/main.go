package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/orm"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
)

type seedFlags struct {
	dsn      string
	truncate bool
	workers  int
}

func newRootCmd() *cobra.Command {
	flags := seedFlags{}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Write the demo league into Postgres",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.dsn, "dsn", "", "database url (defaults to DB_URL)")
	cmd.Flags().BoolVar(&flags.truncate, "truncate", false, "wipe league tables before seeding")
	cmd.Flags().IntVar(&flags.workers, "workers", 4, "concurrent score writers")
	return cmd
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Default().Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags seedFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(logging.Options{
		Level:       cfg.LogLevel,
		ServiceName: "golf-league-seed",
		Version:     cfg.ServiceVersion,
		Environment: cfg.AppEnv,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if flags.workers < 1 {
		return fmt.Errorf("--workers must be >= 1")
	}
	dsn := strings.TrimSpace(flags.dsn)
	if dsn == "" {
		dsn = cfg.DBURL
	}

	data, err := orm.BuildDataset(orm.Source{
		Teams:   memory.SeedTeams(),
		Players: memory.SeedPlayers(),
		Matches: memory.SeedMatches(),
		Scores:  memory.SeedScores(),
		Points:  memory.SeedPoints(),
	}, id.NewUUIDGenerator(""))
	if err != nil {
		return fmt.Errorf("build dataset: %w", err)
	}

	db, err := orm.Open(orm.ConnectionConfig{
		DSN:          dsn,
		MaxOpenConns: flags.workers + 1,
		Verbose:      logger.Enabled(logging.LevelDebug),
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	_, err = orm.NewSeeder(db, logger).Seed(ctx, data, orm.SeedOptions{
		Truncate: flags.truncate,
		Workers:  flags.workers,
	})
	return err
}
