package infra

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != "value" {
		t.Errorf("got %v, want %q", got, "value")
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected cache miss")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected entry to be expired")
	}
	if c.Size() != 0 {
		t.Errorf("size = %d after expiry read, want 0", c.Size())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := NewCache(3)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("c", 3, time.Minute)

	// Touch "a" so "b" becomes the least recently used.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}

	c.Set("d", 4, time.Minute)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive eviction")
	}
	if c.Size() != 3 {
		t.Errorf("size = %d, want 3", c.Size())
	}
}

func TestCacheUpdateExisting(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "old", time.Minute)
	c.Set("key", "new", time.Minute)

	got, _ := c.Get("key")
	if got != "new" {
		t.Errorf("got %v, want %q", got, "new")
	}
	if c.Size() != 1 {
		t.Errorf("size = %d, want 1", c.Size())
	}
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	c.Set("key", "value", time.Minute)
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected key to be deleted")
	}
}

func TestCacheSweep(t *testing.T) {
	c := NewCache(10)
	defer c.Close()

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i, time.Millisecond)
	}
	time.Sleep(5 * time.Millisecond)
	c.sweep()

	if c.Size() != 0 {
		t.Errorf("size = %d after sweep, want 0", c.Size())
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := NewCache(10)
	c.Close()
	c.Close()
}
