// Package memstore implements the file-backed memory record store.
// Each collection is a flat directory of Markdown files; anything without
// the .md extension is invisible to the store.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
)

const recordExt = ".md"

// Config holds the fixed collection roots, resolved once at startup.
type Config struct {
	BusinessRoot string
	LegacyRoot   string
}

// Store reads and writes memory records on the local filesystem.
type Store struct {
	roots map[memory.Collection]string
	now   func() time.Time
}

// New creates a store over the configured roots.
func New(cfg Config) *Store {
	return &Store{
		roots: map[memory.Collection]string{
			memory.Business: cfg.BusinessRoot,
			memory.Legacy:   cfg.LegacyRoot,
		},
		now: time.Now,
	}
}

// WithClock overrides the timestamp source for saved records.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// List returns every record in the collection plus the total record count.
// A missing root yields an empty collection, not an error. The count is
// independent of any search term: it is the number of .md entries present.
// A read failure on an individual record fails the whole listing so that
// totals never silently undercount.
func (s *Store) List(ctx context.Context, c memory.Collection) ([]memory.Record, int, error) {
	root, err := s.root(c)
	if err != nil {
		return nil, 0, err
	}

	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list %s: %v", domain.ErrStoreAccess, root, err)
	}

	var records []memory.Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordExt {
			continue
		}
		path := filepath.Join(root, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: read %s: %v", domain.ErrStoreAccess, path, err)
		}
		records = append(records, memory.New(c, entry.Name(), string(content), path))
	}
	return records, len(records), nil
}

// Check reports whether the collection root is usable. A missing root is
// fine (empty collection); an existing root that cannot be listed is not.
func (s *Store) Check(ctx context.Context, c memory.Collection) error {
	root, err := s.root(c)
	if err != nil {
		return err
	}
	if _, err := os.ReadDir(root); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: list %s: %v", domain.ErrStoreAccess, root, err)
	}
	return nil
}

// Save writes a new timestamped record into the collection, creating the
// root if needed. Filenames are date-prefixed topic slugs; collisions get
// a numeric suffix.
func (s *Store) Save(ctx context.Context, c memory.Collection, topic, content string) (memory.Record, error) {
	root, err := s.root(c)
	if err != nil {
		return memory.Record{}, err
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return memory.Record{}, fmt.Errorf("%w: create %s: %v", domain.ErrStoreAccess, root, err)
	}

	now := s.now()
	base := now.Format("2006-01-02") + "-" + slug(topic)
	name := base + recordExt
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(root, name)); errors.Is(err, fs.ErrNotExist) {
			break
		}
		name = fmt.Sprintf("%s-%d%s", base, i, recordExt)
	}

	path := filepath.Join(root, name)
	body := fmt.Sprintf("# %s\n\n_Saved %s_\n\n%s\n", topic, now.Format("2006-01-02 15:04"), content)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return memory.Record{}, fmt.Errorf("%w: write %s: %v", domain.ErrStoreAccess, path, err)
	}

	return memory.New(c, name, body, path), nil
}

func (s *Store) root(c memory.Collection) (string, error) {
	root, ok := s.roots[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownScope, c)
	}
	return root, nil
}

// slug lowercases the topic and collapses runs of non-alphanumerics into
// single dashes.
func slug(topic string) string {
	var b strings.Builder
	dash := true // swallow leading dashes
	for _, r := range strings.ToLower(topic) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "note"
	}
	return out
}
