package querybuilder

import (
	"testing"

	"github.com/lib/pq"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("league_id", "l1"), IsNull("deleted_at")).
		OrderBy("name ASC", "id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE league_id = $1 AND deleted_at IS NULL ORDER BY name ASC, id ASC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "l1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_AnyOfAndJoin(t *testing.T) {
	query, args, err := Select("s.id", "s.strokes").
		From("match_scores s").
		Join("JOIN matches m ON m.id = s.match_id").
		Where(
			AnyOf("m.status", []string{"COMPLETED", "FINALIZED"}),
			nil,
			Eq("s.hole", 9),
			IsNull("m.deleted_at"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT s.id, s.strokes FROM match_scores s JOIN matches m ON m.id = s.match_id WHERE m.status = ANY($1) AND s.hole = $2 AND m.deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
	if _, ok := args[0].(*pq.StringArray); !ok {
		t.Fatalf("expected pq string array, got %T", args[0])
	}
	if args[1] != 9 {
		t.Fatalf("unexpected hole arg: %+v", args[1])
	}
}

func TestSelectBuilder_RequiresColumnsAndTable(t *testing.T) {
	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}
