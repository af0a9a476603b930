package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(defaultTTL time.Duration) (*Store, *fakeClock) {
	clk := &fakeClock{now: time.Unix(1700000000, 0)}
	s := New(defaultTTL)
	s.now = clk.Now
	return s, clk
}

func TestStore_GetReturnsValueBeforeExpiry(t *testing.T) {
	s, clk := newTestStore(5 * time.Minute)

	s.Set("a", "value", 10*time.Second)

	clk.Advance(9 * time.Second)
	got, ok := s.Get("a")
	if !ok {
		t.Fatal("expected hit before expiry")
	}
	if got != "value" {
		t.Errorf("Get = %v, want %q", got, "value")
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	s, _ := newTestStore(5 * time.Minute)

	if _, ok := s.Get("missing"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestStore_GetExpiredEvictsEntry(t *testing.T) {
	s, clk := newTestStore(5 * time.Minute)

	s.Set("a", 1, 10*time.Second)
	clk.Advance(11 * time.Second)

	if _, ok := s.Get("a"); ok {
		t.Fatal("expected miss after expiry")
	}

	// Lazy eviction: the expired read alone must shrink the store.
	if size := s.Size(); size != 0 {
		t.Errorf("Size after expired read = %d, want 0", size)
	}
}

func TestStore_SetOverwritesExisting(t *testing.T) {
	s, _ := newTestStore(5 * time.Minute)

	s.Set("a", "old", time.Minute)
	s.Set("a", "new", time.Minute)

	got, ok := s.Get("a")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != "new" {
		t.Errorf("Get = %v, want %q", got, "new")
	}
	if size := s.Size(); size != 1 {
		t.Errorf("Size = %d, want 1", size)
	}
}

func TestStore_SetDefaultTTL(t *testing.T) {
	s, clk := newTestStore(300 * time.Second)

	s.Set("a", 1, DefaultTTL)

	clk.Advance(299 * time.Second)
	if _, ok := s.Get("a"); !ok {
		t.Fatal("expected hit within default TTL")
	}

	clk.Advance(2 * time.Second)
	if _, ok := s.Get("a"); ok {
		t.Error("expected miss after default TTL elapsed")
	}
	if size := s.Size(); size != 0 {
		t.Errorf("Size = %d, want 0", size)
	}
}

func TestStore_SetZeroTTL(t *testing.T) {
	s, clk := newTestStore(5 * time.Minute)

	s.Set("a", 1, 0)
	clk.Advance(time.Nanosecond)

	if _, ok := s.Get("a"); ok {
		t.Error("zero TTL entry should be stale on next read")
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore(5 * time.Minute)

	s.Set("a", 1, time.Minute)
	s.Delete("a")
	s.Delete("a")

	if _, ok := s.Get("a"); ok {
		t.Error("expected miss after delete")
	}
	if size := s.Size(); size != 0 {
		t.Errorf("Size = %d, want 0", size)
	}
}

func TestStore_Clear(t *testing.T) {
	s, _ := newTestStore(5 * time.Minute)

	for i := 0; i < 5; i++ {
		s.Set(fmt.Sprintf("key-%d", i), i, time.Minute)
	}
	s.Clear()

	if size := s.Size(); size != 0 {
		t.Errorf("Size after Clear = %d, want 0", size)
	}
}

func TestStore_CleanupExpired(t *testing.T) {
	s, clk := newTestStore(5 * time.Minute)

	// Three entries expire within 10s, two live for an hour.
	for i := 0; i < 3; i++ {
		s.Set(fmt.Sprintf("short-%d", i), i, 10*time.Second)
	}
	for i := 0; i < 2; i++ {
		s.Set(fmt.Sprintf("long-%d", i), i, time.Hour)
	}

	clk.Advance(11 * time.Second)

	if removed := s.CleanupExpired(); removed != 3 {
		t.Errorf("CleanupExpired = %d, want 3", removed)
	}
	if size := s.Size(); size != 2 {
		t.Errorf("Size after sweep = %d, want 2", size)
	}
}

func TestStore_SizeCountsUnevictedExpiredEntries(t *testing.T) {
	s, clk := newTestStore(5 * time.Minute)

	s.Set("a", 1, 10*time.Second)
	s.Set("b", 2, time.Hour)
	clk.Advance(11 * time.Second)

	// "a" is logically expired but has not been read or swept, so it still
	// counts.
	if size := s.Size(); size != 2 {
		t.Errorf("Size = %d, want 2", size)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(5 * time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%10)
				s.Set(key, n, time.Minute)
				s.Get(key)
				if j%25 == 0 {
					s.CleanupExpired()
				}
			}
		}(i)
	}
	wg.Wait()

	if size := s.Size(); size != 10 {
		t.Errorf("Size = %d, want 10", size)
	}
}
