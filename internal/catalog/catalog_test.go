package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LFroesch/spark/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Disable()
	os.Exit(m.Run())
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEntriesListsOnlyVisibleDirectories(t *testing.T) {
	base := t.TempDir()
	mkdir(t, base, "alpha")
	mkdir(t, base, "beta")
	mkdir(t, base, ".hidden")
	if err := os.WriteFile(filepath.Join(base, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := New(base).Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Name != "alpha" && e.Name != "beta" {
			t.Errorf("unexpected entry %q", e.Name)
		}
		if e.Path != filepath.Join(base, e.Name) {
			t.Errorf("entry %q has path %q", e.Name, e.Path)
		}
		if e.Modified.IsZero() || e.Created.IsZero() {
			t.Errorf("entry %q missing timestamps", e.Name)
		}
	}
}

func TestKindDetectedOnceAtLoad(t *testing.T) {
	base := t.TempDir()
	mkdir(t, base, "plain")
	mkdir(t, base, "repo", ".git")

	entries, err := New(base).Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}

	kinds := map[string]Kind{}
	for _, e := range entries {
		kinds[e.Name] = e.Kind
	}
	if kinds["plain"] != Plain {
		t.Errorf("plain dir classified as %v", kinds["plain"])
	}
	if kinds["repo"] != Git {
		t.Errorf("repo dir classified as %v", kinds["repo"])
	}
}

func TestListingIsCachedUntilReset(t *testing.T) {
	base := t.TempDir()
	mkdir(t, base, "first")

	c := New(base)
	entries, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	// A directory created mid-session is invisible until Reset.
	mkdir(t, base, "second")
	entries, err = c.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("cache miss: got %d entries before Reset, want 1", len(entries))
	}

	c.Reset()
	entries, err = c.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries after Reset, want 2", len(entries))
	}
}

func TestMissingBaseIsAnError(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := c.Entries(); err == nil {
		t.Error("Entries() on a missing base should fail; the caller creates it first")
	}
}
