// Package catalog lists the project directories under a base path and
// caches them for the lifetime of an interactive session.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LFroesch/spark/internal/git"
	"github.com/LFroesch/spark/internal/logger"
)

// Kind classifies an entry once at load time.
type Kind int

const (
	Plain Kind = iota
	Git
)

// Entry is one candidate project directory.
type Entry struct {
	Name     string
	Path     string
	Created  time.Time
	Modified time.Time
	Kind     Kind

	// Score is recomputed against the current query on every render
	// pass and is never trusted across passes.
	Score float64
}

// Catalog loads the immediate subdirectories of a base path at most once.
type Catalog struct {
	base    string
	entries []Entry
	loaded  bool
}

// New returns a catalog rooted at base. Nothing is read until Entries
// is called; the caller is responsible for creating base if it is absent.
func New(base string) *Catalog {
	return &Catalog{base: base}
}

// Base returns the directory the catalog lists.
func (c *Catalog) Base() string {
	return c.base
}

// Entries returns the cached listing, loading it on first call.
func (c *Catalog) Entries() ([]Entry, error) {
	if !c.loaded {
		if err := c.load(); err != nil {
			return nil, err
		}
	}
	return c.entries, nil
}

// Reset discards the cached listing so the next Entries call re-reads the
// directory. Used after a destructive delete.
func (c *Catalog) Reset() {
	c.entries = nil
	c.loaded = false
}

func (c *Catalog) load() error {
	dirEntries, err := os.ReadDir(c.base)
	if err != nil {
		return fmt.Errorf("cannot read projects directory %s: %w", c.base, err)
	}

	entries := []Entry{}
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		info, err := de.Info()
		if err != nil {
			logger.Warn("Skipping %s: cannot stat: %v", name, err)
			continue
		}

		path := filepath.Join(c.base, name)
		kind := Plain
		if git.IsRepo(path) {
			kind = Git
		}

		entries = append(entries, Entry{
			Name:     name,
			Path:     path,
			Created:  createdTime(info),
			Modified: info.ModTime(),
			Kind:     kind,
		})
	}

	c.entries = entries
	c.loaded = true
	return nil
}
