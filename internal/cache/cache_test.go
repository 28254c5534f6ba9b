package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestKeyNormalizesQuery(t *testing.T) {
	a := Key("search", "Paris est la  capitale", "3")
	b := Key("search", "  paris EST la capitale ", "3")
	if a != b {
		t.Errorf("expected equal keys, got %q and %q", a, b)
	}

	c := Key("search", "Paris est la capitale", "5")
	if a == c {
		t.Error("expected different keys for different parts")
	}

	d := Key("other", "Paris est la capitale", "3")
	if a == d {
		t.Error("expected different keys for different namespaces")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestDiskCacheRoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := Key("search", "claim")

	if err := c.Set(key, []byte(`[{"title":"a"}]`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get(key)
	if !ok || string(got) != `[{"title":"a"}]` {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	if err := c.Set(key, []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := c.Get(key); ok {
		t.Error("expected expired entry to miss")
	}
	if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
		t.Error("expected expired entry file to be removed")
	}
}

func TestDiskCacheCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := Key("search", "corrupt")

	if err := os.WriteFile(c.path(key), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(key); ok {
		t.Error("expected corrupt entry to miss")
	}
}

func TestDiskCacheLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	for i := 0; i < 5; i++ {
		if err := c.Set(Key("search", string(rune('a'+i))), []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, ".entry-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("found leftover temp files: %v", matches)
	}
}

func TestDiskCacheDeleteMissing(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	if err := c.Delete("nope"); err != nil {
		t.Errorf("Delete of missing key returned %v", err)
	}
}

func TestLayeredCachePromotesDiskHits(t *testing.T) {
	mem := NewMemoryCache(time.Minute, time.Minute)
	disk := NewDiskCache(t.TempDir(), time.Hour)
	c := NewLayered(mem, disk)

	if err := disk.Set("k", []byte("from-disk"), 0); err != nil {
		t.Fatal(err)
	}

	got, ok := c.Get("k")
	if !ok || string(got) != "from-disk" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if _, ok := mem.Get("k"); !ok {
		t.Error("expected disk hit to be promoted to memory")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after Clear")
	}
}
