package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/golf-league/internal/config"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
	preparedBinaryParam  = "disable_prepared_binary_result"
)

// postgresTarget is the connection string handed to lib/pq and the database
// name reported on query spans.
type postgresTarget struct {
	DSN    string
	DBName string
}

// resolvePostgresTarget accepts both URL and key=value connection strings.
// With disablePreparedBinary set, lib/pq is told to skip binary results for
// unnamed statements unless the caller already chose a value.
func resolvePostgresTarget(raw string, disablePreparedBinary bool) postgresTarget {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		target := postgresTarget{
			DSN:    raw,
			DBName: strings.TrimPrefix(parsed.Path, "/"),
		}
		if disablePreparedBinary {
			query := parsed.Query()
			if query.Get(preparedBinaryParam) == "" {
				query.Set(preparedBinaryParam, "yes")
				parsed.RawQuery = query.Encode()
				target.DSN = parsed.String()
			}
		}
		return target
	}

	target := postgresTarget{DSN: raw}
	hasParam := false
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		switch key {
		case "dbname":
			target.DBName = strings.Trim(value, `"'`)
		case preparedBinaryParam:
			hasParam = true
		}
	}
	if disablePreparedBinary && !hasParam && raw != "" {
		target.DSN = raw + " " + preparedBinaryParam + "=yes"
	}
	return target
}

// formatDBQueryForTrace collapses whitespace so multi-line statements read as
// one line on a span, capped at maxTracedQueryLength bytes.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	target := resolvePostgresTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", target.DSN,
		otelsql.WithDBName(target.DBName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
