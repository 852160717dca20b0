package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/team"
	basecache "github.com/riskibarqy/golf-league/internal/platform/cache"
)

type countingTeamRepo struct {
	calls int
	items []team.Team
	err   error
}

func (r *countingTeamRepo) List(context.Context) ([]team.Team, error) {
	r.calls++
	return r.items, r.err
}

type countingPlayerRepo struct {
	listCalls    int
	primaryCalls int
	items        []player.Player
}

func (r *countingPlayerRepo) List(context.Context) ([]player.Player, error) {
	r.listCalls++
	return r.items, nil
}

func (r *countingPlayerRepo) ListPrimary(context.Context) ([]player.Player, error) {
	r.primaryCalls++
	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		if item.IsPrimary() {
			out = append(out, item)
		}
	}
	return out, nil
}

func TestTeamRepository_ServesFromCache(t *testing.T) {
	next := &countingTeamRepo{items: []team.Team{{ID: "t1", Name: "Eagles"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		items, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("list teams: %v", err)
		}
		if len(items) != 1 || items[0].ID != "t1" {
			t.Fatalf("unexpected teams: %+v", items)
		}
	}
	if next.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", next.calls)
	}
}

func TestTeamRepository_ReturnsCopies(t *testing.T) {
	next := &countingTeamRepo{items: []team.Team{{ID: "t1", Name: "Eagles"}}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	first, _ := repo.List(context.Background())
	first[0].Name = "mutated"

	second, _ := repo.List(context.Background())
	if second[0].Name != "Eagles" {
		t.Fatalf("cached slice was mutated through a returned copy")
	}
}

func TestTeamRepository_DoesNotCacheErrors(t *testing.T) {
	next := &countingTeamRepo{err: errors.New("db down")}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	next.err = nil
	next.items = []team.Team{{ID: "t1", Name: "Eagles"}}
	items, err := repo.List(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("expected recovery after error, items=%v err=%v", items, err)
	}
	if next.calls != 2 {
		t.Fatalf("expected two upstream calls, got %d", next.calls)
	}
}

func TestPlayerRepository_SeparateKeysPerView(t *testing.T) {
	next := &countingPlayerRepo{items: []player.Player{
		{ID: "p1", Type: player.TypePrimary},
		{ID: "p2", Type: player.TypeSubstitute},
	}}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	all, _ := repo.List(context.Background())
	primary, _ := repo.ListPrimary(context.Background())
	_, _ = repo.ListPrimary(context.Background())

	if len(all) != 2 || len(primary) != 1 {
		t.Fatalf("unexpected sizes all=%d primary=%d", len(all), len(primary))
	}
	if next.listCalls != 1 || next.primaryCalls != 1 {
		t.Fatalf("expected one call per view, got list=%d primary=%d", next.listCalls, next.primaryCalls)
	}
}
