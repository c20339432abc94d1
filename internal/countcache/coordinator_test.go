package countcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	data   map[string]int64
	ttls   map[string]time.Duration
	getErr error
	putErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, entity string) (int64, bool, error) {
	if s.getErr != nil {
		return 0, false, s.getErr
	}
	v, ok := s.data[entity]
	return v, ok, nil
}

func (s *fakeStore) Put(_ context.Context, entity string, count int64, ttl time.Duration) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.data[entity] = count
	s.ttls[entity] = ttl
	return nil
}

// счётчик, падающий при лишнем вызове
func countOnce(t *testing.T, value int64) func(context.Context) (int64, error) {
	t.Helper()
	calls := 0
	return func(context.Context) (int64, error) {
		calls++
		if calls > 1 {
			t.Fatal("count query executed twice")
		}
		return value, nil
	}
}

func TestTotalCount_CachesLargeEligibleCount(t *testing.T) {
	store := newFakeStore()
	c := New(store, 100000, 600*time.Second)
	compute := countOnce(t, 150000)

	got, err := c.TotalCount(context.Background(), "users", true, compute)
	if err != nil {
		t.Fatalf("TotalCount: %v", err)
	}
	if got != 150000 {
		t.Fatalf("count = %d, want 150000", got)
	}
	if store.ttls["users"] != 600*time.Second {
		t.Fatalf("expected 600s ttl, got %v", store.ttls["users"])
	}

	// повторный eligible-вызов в пределах TTL — из кэша, без пересчёта
	got, err = c.TotalCount(context.Background(), "users", true, compute)
	if err != nil {
		t.Fatalf("TotalCount (cached): %v", err)
	}
	if got != 150000 {
		t.Fatalf("cached count = %d, want 150000", got)
	}
}

func TestTotalCount_SmallCountNotCached(t *testing.T) {
	store := newFakeStore()
	c := New(store, 100000, 600*time.Second)

	got, err := c.TotalCount(context.Background(), "users", true, func(context.Context) (int64, error) {
		return 50000, nil
	})
	if err != nil {
		t.Fatalf("TotalCount: %v", err)
	}
	if got != 50000 {
		t.Fatalf("count = %d, want 50000", got)
	}
	if _, ok := store.data["users"]; ok {
		t.Fatal("small count must not be cached")
	}
}

func TestTotalCount_IneligibleAlwaysRecomputes(t *testing.T) {
	store := newFakeStore()
	store.data["users"] = 999999 // кэш есть, но суженный набор его не видит
	c := New(store, 100000, 600*time.Second)

	calls := 0
	compute := func(context.Context) (int64, error) {
		calls++
		return 3, nil
	}

	for i := 0; i < 2; i++ {
		got, err := c.TotalCount(context.Background(), "users", false, compute)
		if err != nil {
			t.Fatalf("TotalCount: %v", err)
		}
		if got != 3 {
			t.Fatalf("count = %d, want 3", got)
		}
	}
	if calls != 2 {
		t.Fatalf("expected 2 live counts, got %d", calls)
	}
}

func TestTotalCount_StoreFailureIsMiss(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("redis down")
	store.putErr = errors.New("redis down")
	c := New(store, 100000, 600*time.Second)

	got, err := c.TotalCount(context.Background(), "users", true, func(context.Context) (int64, error) {
		return 200000, nil
	})
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if got != 200000 {
		t.Fatalf("count = %d, want 200000", got)
	}
}

func TestTotalCount_ComputeErrorPropagates(t *testing.T) {
	c := New(newFakeStore(), 100000, 600*time.Second)

	wantErr := errors.New("db down")
	_, err := c.TotalCount(context.Background(), "users", true, func(context.Context) (int64, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
