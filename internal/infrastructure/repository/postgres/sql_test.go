package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation match_scores does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if isBindParameterMismatch(nil) {
			t.Fatalf("expected false for nil")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches by 26000 code", func(t *testing.T) {
		err := fakeErr("pq: prepared statement missing (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for 26000 prepared statement error")
		}
	})

	t.Run("matches wrapped error", func(t *testing.T) {
		err := fmt.Errorf("select matches: %w", fakeErr("pq: unnamed prepared statement does not exist"))
		if !isRetryablePreparedError(err) {
			t.Fatalf("expected wrapped error to be retryable")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation match_scores does not exist")
		if isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("boom")) {
		t.Fatalf("expected unrelated error to not be not found")
	}
}

func TestNullIntToPtr(t *testing.T) {
	if got := nullIntToPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for null hole, got %d", *got)
	}
	got := nullIntToPtr(sql.NullInt64{Int64: 4, Valid: true})
	if got == nil || *got != 4 {
		t.Fatalf("expected hole 4, got %v", got)
	}
}

func TestMatchTableModelToDomain(t *testing.T) {
	row := matchTableModel{
		PublicID:   "match-1",
		MatchDate:  time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		WeekNumber: 2,
		HomeTeamID: "team-a",
		AwayTeamID: "team-b",
		Status:     "final",
	}

	got, err := row.toDomain()
	if err != nil {
		t.Fatalf("toDomain error: %v", err)
	}
	if got.ID != "match-1" || got.WeekNumber != 2 || !got.IsDecided() {
		t.Fatalf("unexpected match: %+v", got)
	}

	row.Status = "postponed"
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected unknown status to fail decoding")
	}

	row.Status = ""
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected empty status to fail decoding")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
