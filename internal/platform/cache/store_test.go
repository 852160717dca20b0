package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "roster", nil
	}

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "teams:all", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "roster" {
				errCh <- errors.New("unexpected cached value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("GetOrLoad failed: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected loader to run once, got %d", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	store := NewStore(time.Minute)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "players:PRIMARY", 8)
	if _, ok := store.Get(context.Background(), "players:PRIMARY"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "players:PRIMARY"); ok {
		t.Fatalf("expected expired entry")
	}

	stats := store.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	boom := errors.New("db down")
	calls := 0

	loader := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || v != "ok" {
		t.Fatalf("expected reload after error, got v=%v err=%v", v, err)
	}
}

func TestLoad_Typed(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	got, err := Load(ctx, store, "teams:all", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected load result: %v %v", got, err)
	}

	store.Set(ctx, "teams:all", 42)
	got, err = Load(ctx, store, "teams:all", func(context.Context) ([]string, error) {
		return []string{"c"}, nil
	})
	if err != nil || len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected reload on type mismatch, got %v %v", got, err)
	}
}
