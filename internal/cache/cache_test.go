package cache

import (
	"testing"
	"time"
)

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("https://example.com/guide")
	b := Key("https://example.com/guide")
	c := Key("https://example.com/other")

	if a != b {
		t.Error("Key must be stable for the same ref")
	}
	if a == c {
		t.Error("Key must differ for different refs")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Unexpected hit for missing key")
	}

	if err := c.Set("k", []byte("extracted text"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get("k")
	if !ok || string(got) != "extracted text" {
		t.Errorf("Get = %q, %v", got, ok)
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Key should be gone after Delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set(Key("u"), []byte("page text"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := c.Get(Key("u"))
	if !ok || string(got) != "page text" {
		t.Errorf("Get = %q, %v", got, ok)
	}

	// Already-expired entry is treated as a miss and removed
	if err := c.Set(Key("old"), []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := c.Get(Key("old")); ok {
		t.Error("Expired entry should miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// Seed only the disk layer
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("from disk"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Minute)
	got, ok := layered.Get("k")
	if !ok || string(got) != "from disk" {
		t.Fatalf("Get = %q, %v", got, ok)
	}

	// Hit again; the memory layer now serves it
	if _, ok := layered.Get("k"); !ok {
		t.Error("Promoted entry should hit")
	}
}
