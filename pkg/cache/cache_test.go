package cache

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheSetGet(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	key := "layout:abc123"
	want := []byte(`{"nodes":[]}`)
	if err := c.Set(ctx, key, want, time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, hit, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() hit = false, want true")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	_, hit, err := c.Get(context.Background(), "layout:missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit = true for absent key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "layout:short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, hit, err := c.Get(ctx, "layout:short")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hit {
		t.Error("Get() hit = true for expired entry")
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "layout:forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	_, hit, err := c.Get(ctx, "layout:forever")
	if err != nil || !hit {
		t.Errorf("Get() = hit %v, err %v; want hit with no expiration", hit, err)
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "layout:gone", []byte("x"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "layout:gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:gone"); hit {
		t.Error("Get() hit = true after Delete()")
	}
	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "layout:never-existed"); err != nil {
		t.Errorf("Delete(absent) error = %v, want nil", err)
	}
}

func TestFileCacheClear(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	ctx := context.Background()
	fc := c.(*FileCache)

	for _, key := range []string{"layout:one", "graph:two"} {
		if err := c.Set(ctx, key, []byte("x"), 0); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}
	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	for _, key := range []string{"layout:one", "graph:two"} {
		if _, hit, _ := c.Get(ctx, key); hit {
			t.Errorf("Get(%s) hit = true after Clear()", key)
		}
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get() = hit %v, err %v; want permanent miss", hit, err)
	}
}

func TestDefaultKeyerDeterministic(t *testing.T) {
	k := NewDefaultKeyer()
	opts := LayoutKeyOpts{Algorithm: "layered", Direction: "top-bottom", NodeSpacing: 80, RankSpacing: 120}

	a := k.LayoutKey("hash1", opts)
	b := k.LayoutKey("hash1", opts)
	if a != b {
		t.Errorf("LayoutKey() not deterministic: %q != %q", a, b)
	}
	if !strings.HasPrefix(a, "layout:") {
		t.Errorf("LayoutKey() = %q, want layout: prefix", a)
	}
}

func TestDefaultKeyerVariesWithOptions(t *testing.T) {
	k := NewDefaultKeyer()
	base := LayoutKeyOpts{Algorithm: "layered", Direction: "top-bottom", NodeSpacing: 80, RankSpacing: 120}

	variants := []LayoutKeyOpts{
		{Algorithm: "radial", Direction: base.Direction, NodeSpacing: base.NodeSpacing, RankSpacing: base.RankSpacing},
		{Algorithm: base.Algorithm, Direction: "left-right", NodeSpacing: base.NodeSpacing, RankSpacing: base.RankSpacing},
		{Algorithm: base.Algorithm, Direction: base.Direction, NodeSpacing: 40, RankSpacing: base.RankSpacing},
	}
	baseKey := k.LayoutKey("hash1", base)
	for _, v := range variants {
		if k.LayoutKey("hash1", v) == baseKey {
			t.Errorf("LayoutKey() collision for differing options %+v", v)
		}
	}
	if k.LayoutKey("hash2", base) == baseKey {
		t.Error("LayoutKey() collision for differing graph hashes")
	}
}

func TestGraphKey(t *testing.T) {
	k := NewDefaultKeyer()
	if key := k.GraphKey("mydiagram"); !strings.HasPrefix(key, "graph:") {
		t.Errorf("GraphKey() = %q, want graph: prefix", key)
	}
	if k.GraphKey("a") == k.GraphKey("b") {
		t.Error("GraphKey() collision for different names")
	}
}

func TestScopedKeyer(t *testing.T) {
	k := NewScopedKeyer(NewDefaultKeyer(), "tenant:42:")

	if key := k.GraphKey("d"); !strings.HasPrefix(key, "tenant:42:graph:") {
		t.Errorf("GraphKey() = %q, want tenant prefix", key)
	}
	if key := k.LayoutKey("h", LayoutKeyOpts{}); !strings.HasPrefix(key, "tenant:42:layout:") {
		t.Errorf("LayoutKey() = %q, want tenant prefix", key)
	}
}

func TestHash(t *testing.T) {
	// SHA-256 of "abc", a fixed reference value.
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Hash([]byte("abc")); got != want {
		t.Errorf("Hash() = %q, want %q", got, want)
	}
}
