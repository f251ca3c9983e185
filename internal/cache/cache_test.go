package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestKey_Deterministic(t *testing.T) {
	a := Key("transcript text", "t=0.50;min=10")
	b := Key("transcript text", "t=0.50;min=10")
	if a != b {
		t.Errorf("Same inputs produced different keys")
	}
	if !strings.HasPrefix(a, "reqscribe:v1:") {
		t.Errorf("Key missing version prefix: %q", a)
	}
}

func TestKey_SensitiveToBothInputs(t *testing.T) {
	base := Key("transcript text", "t=0.50")
	if Key("other transcript", "t=0.50") == base {
		t.Errorf("Key ignores transcript text")
	}
	if Key("transcript text", "t=0.70") == base {
		t.Errorf("Key ignores fingerprint")
	}
	// The separator prevents boundary ambiguity between the two parts
	if Key("bc", "a") == Key("c", "ab") {
		t.Errorf("Key concatenation is ambiguous")
	}
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Errorf("Unexpected hit on empty cache")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || !bytes.Equal(val, []byte("v")) {
		t.Errorf("Get = %q/%v, want v/true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Errorf("Value survived delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Errorf("Expired value still readable")
	}
}

func TestDiskCache_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first := NewDiskCache(dir, time.Hour)
	if err := first.Set("reqscribe:v1:abc", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := NewDiskCache(dir, time.Hour)
	val, found := second.Get("reqscribe:v1:abc")
	if !found || !bytes.Equal(val, []byte("payload")) {
		t.Errorf("Get = %q/%v, want payload/true", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Errorf("Expired entry still readable")
	}
}

func TestDiskCache_DeleteMissingIsNoError(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	if err := c.Delete("never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// Seed disk only, then read through the layered cache
	disk := NewDiskCache(dir, time.Hour)
	key := Key("the transcript", "t=0.50")
	if err := disk.Set(key, []byte("result"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found := layered.Get(key)
	if !found || !bytes.Equal(val, []byte("result")) {
		t.Fatalf("Get = %q/%v, want result/true", val, found)
	}

	// The hit must now be served from memory even if disk is cleared
	if err := disk.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := layered.Get(key); !found {
		t.Errorf("Disk hit was not promoted to memory")
	}
}

func TestLayeredCache_ClearEmptiesBothLayers(t *testing.T) {
	layered := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)

	if err := layered.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := layered.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := layered.Get("k"); found {
		t.Errorf("Value survived clear")
	}
}
