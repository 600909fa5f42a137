package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreTTL(t *testing.T) {
	now := time.Unix(1700000000, 0)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	if _, ok := store.Get(ctx, "figma:team:T1"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Put(ctx, "figma:team:T1", []byte(`[1]`), 5*time.Minute)
	val, ok := store.Get(ctx, "figma:team:T1")
	if !ok || string(val) != "[1]" {
		t.Fatalf("expected fresh hit, got ok=%v val=%s", ok, val)
	}

	// still fresh just under the TTL
	now = now.Add(5*time.Minute - time.Second)
	if _, ok := store.Get(ctx, "figma:team:T1"); !ok {
		t.Fatal("expected hit just before expiry")
	}

	// stale exactly at the TTL
	now = now.Add(time.Second)
	if _, ok := store.Get(ctx, "figma:team:T1"); ok {
		t.Fatal("expected miss after expiry")
	}

	// a recompute overwrites the stale entry
	store.Put(ctx, "figma:team:T1", []byte(`[2]`), 5*time.Minute)
	val, ok = store.Get(ctx, "figma:team:T1")
	if !ok || string(val) != "[2]" {
		t.Fatalf("expected refreshed value, got ok=%v val=%s", ok, val)
	}
}

func TestMemoryStoreIsolatesKeys(t *testing.T) {
	now := time.Unix(1700000000, 0)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	store.Put(ctx, "figma:team:T1", []byte(`"a"`), time.Minute)
	store.Put(ctx, "figma:projects:p1", []byte(`"b"`), time.Hour)

	now = now.Add(30 * time.Minute)
	if _, ok := store.Get(ctx, "figma:team:T1"); ok {
		t.Fatal("team entry should have expired")
	}
	if val, ok := store.Get(ctx, "figma:projects:p1"); !ok || string(val) != `"b"` {
		t.Fatalf("projects entry should survive, got ok=%v val=%s", ok, val)
	}
}
