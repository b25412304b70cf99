package cache

import (
	"context"
	"testing"
	"time"
)

var (
	_ Cache = (*Memory)(nil)
	_ Cache = (*Redis)(nil)
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Errorf("Get() on empty cache should miss")
	}

	if err := m.Set(ctx, "key", "value", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, ok := m.Get(ctx, "key")
	if !ok {
		t.Fatalf("Get() should hit after Set()")
	}
	if val != "value" {
		t.Errorf("Get() = %q, expected %q", val, "value")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "key", "first", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := m.Set(ctx, "key", "second", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, ok := m.Get(ctx, "key")
	if !ok || val != "second" {
		t.Errorf("Get() = %q, %v, expected overwritten value", val, ok)
	}
}

func TestMemoryTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "short", "value", 10*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := m.Get(ctx, "short"); !ok {
		t.Fatalf("Get() should hit before the TTL elapses")
	}

	time.Sleep(25 * time.Millisecond)

	if _, ok := m.Get(ctx, "short"); ok {
		t.Errorf("Get() should miss after the TTL elapses")
	}
}

func TestMemoryZeroTTLDoesNotExpire(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, "pinned", "value", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(15 * time.Millisecond)

	if _, ok := m.Get(ctx, "pinned"); !ok {
		t.Errorf("entries without a TTL should not expire")
	}
}

func TestMemoryClose(t *testing.T) {
	m := NewMemory()
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
