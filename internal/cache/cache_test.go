package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Stop()
	ctx := context.Background()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	m.Set(ctx, "k", []byte("v"))
	got, ok := m.Get(ctx, "k")
	if !ok {
		t.Fatal("Get after Set should hit")
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(10 * time.Millisecond)
	defer m.Stop()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"))
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Fatal("entry should be live inside the TTL window")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Error("entry should have expired past the TTL window")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Stop()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("old"))
	m.Set(ctx, "k", []byte("new"))

	got, ok := m.Get(ctx, "k")
	if !ok || string(got) != "new" {
		t.Errorf("Get = %q, %v; want %q, true", got, ok, "new")
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Stop()
	ctx := context.Background()

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))
	m.Clear()

	if _, ok := m.Get(ctx, "a"); ok {
		t.Error("Clear should drop all entries")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory(time.Minute)
	defer m.Stop()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				m.Set(ctx, "shared", []byte("payload"))
				m.Get(ctx, "shared")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
