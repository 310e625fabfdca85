package cache

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0, nil)

	if _, ok, err := m.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("expected hit v, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0, nil)
	value := []byte("abc")
	_ = m.Set(ctx, "k", value, 0)
	value[0] = 'z'

	got, _, _ := m.Get(ctx, "k")
	got[1] = 'z'
	again, _, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("expected stored value to be isolated, got %q", again)
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemory(0, clock.Now)

	_ = m.Set(ctx, "short", []byte("1"), time.Second)
	_ = m.Set(ctx, "forever", []byte("2"), 0)

	clock.Advance(time.Second)
	if _, ok, _ := m.Get(ctx, "short"); ok {
		t.Fatalf("expected entry to expire at its deadline")
	}
	if _, ok, _ := m.Get(ctx, "forever"); !ok {
		t.Fatalf("expected entry without ttl to survive")
	}
	if m.Len() != 1 {
		t.Fatalf("expected expired entry to be dropped, len=%d", m.Len())
	}
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2, nil)

	_ = m.Set(ctx, "a", []byte("a"), 0)
	_ = m.Set(ctx, "b", []byte("b"), 0)
	_, _, _ = m.Get(ctx, "a")
	_ = m.Set(ctx, "c", []byte("c"), 0)

	if _, ok, _ := m.Get(ctx, "b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok, _ := m.Get(ctx, k); !ok {
			t.Fatalf("expected %s to remain", k)
		}
	}
}

func TestMemoryOverwriteRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemory(0, clock.Now)

	_ = m.Set(ctx, "k", []byte("1"), time.Second)
	clock.Advance(900 * time.Millisecond)
	_ = m.Set(ctx, "k", []byte("2"), time.Second)
	clock.Advance(900 * time.Millisecond)

	got, ok, _ := m.Get(ctx, "k")
	if !ok || string(got) != "2" {
		t.Fatalf("expected refreshed entry, got %q ok=%v", got, ok)
	}
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory(0, nil)
	if err := m.Set(ctx, "k", nil, 0); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNopNeverHits(t *testing.T) {
	var c Cache = Nop{}
	_ = c.Set(context.Background(), "k", []byte("v"), time.Minute)
	if _, ok, _ := c.Get(context.Background(), "k"); ok {
		t.Fatalf("expected nop cache to miss")
	}
}

func TestNormalizePrefix(t *testing.T) {
	cases := map[string]string{
		"":          defaultKeyPrefix,
		"  ":        defaultKeyPrefix,
		"scores":    "scores:",
		"scores:":   "scores:",
		" scores: ": "scores:",
	}
	for in, want := range cases {
		if got := normalizePrefix(in); got != want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewRedisRequiresAddr(t *testing.T) {
	if _, err := NewRedis(context.Background(), " ", ""); err == nil {
		t.Fatalf("expected error without address")
	}
}
