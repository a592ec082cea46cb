package index

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/renameio"

	"localsearch/internal/errors"
)

// Store persists an Index as a single gob blob at a fixed path.
//
// Saves are atomic (temp file + rename) and guarded by a cross-process file
// lock, so a concurrent save from another process can never leave a
// partially written index behind.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore creates a Store for the index blob at path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the index blob location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a persisted index is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save serializes the full index and atomically replaces any previous blob.
// On failure the in-memory index remains valid; the error is surfaced so the
// caller can decide whether unpersisted state is acceptable.
func (s *Store) Save(ix *Index) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.New(errors.ErrCodeIndexSave, err.Error(), err).WithPath(s.path)
	}
	if err := s.lock.Lock(); err != nil {
		return errors.New(errors.ErrCodeIndexSave, err.Error(), err).WithPath(s.path)
	}
	defer func() { _ = s.lock.Unlock() }()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ix); err != nil {
		return errors.New(errors.ErrCodeIndexSave, err.Error(), err).WithPath(s.path)
	}
	if err := renameio.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return errors.New(errors.ErrCodeIndexSave, err.Error(), err).WithPath(s.path)
	}

	slog.Info("index saved",
		slog.String("path", s.path),
		slog.Int("documents", ix.Len()),
		slog.Int("bytes", buf.Len()))
	return nil
}

// Load reads the persisted index. A missing blob returns (nil, nil); a blob
// that cannot be decoded returns ErrCodeCorruptIndex, which is fatal for the
// load path — the caller must fall back to a full rebuild rather than
// returning a misleadingly empty index.
func (s *Store) Load() (*Index, error) {
	if err := s.lock.RLock(); err != nil {
		return nil, errors.CorruptIndex(s.path, err)
	}
	defer func() { _ = s.lock.Unlock() }()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.CorruptIndex(s.path, err)
	}
	defer f.Close()

	ix := New()
	if err := gob.NewDecoder(f).Decode(ix); err != nil {
		return nil, errors.CorruptIndex(s.path, err)
	}
	if ix.Documents == nil {
		ix.Documents = make(map[string]Document)
	}

	slog.Info("index loaded",
		slog.String("path", s.path),
		slog.Int("documents", ix.Len()))
	return ix, nil
}

// BuildOrLoad returns the persisted index if one can be loaded, and
// otherwise performs a full walk of roots and persists the result.
//
// A corrupt blob is logged and falls through to the rebuild. A save failure
// after a rebuild is logged but does not invalidate the freshly built index.
// The only fatal case is having nothing to load and no roots to build from.
func BuildOrLoad(roots []string, store *Store) (*Index, error) {
	ix, err := store.Load()
	if err != nil {
		slog.Warn("persisted index unusable, rebuilding",
			slog.String("path", store.Path()),
			slog.String("error", err.Error()))
	}
	if ix != nil {
		return ix, nil
	}

	if len(roots) == 0 {
		return nil, errors.New(errors.ErrCodeNoRoots,
			fmt.Sprintf("no persisted index at %s and no document directories configured", store.Path()), nil)
	}

	ix = Build(roots)
	if err := store.Save(ix); err != nil {
		slog.Warn("index built but not persisted", slog.String("error", err.Error()))
	}
	return ix, nil
}
