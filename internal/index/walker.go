package index

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"localsearch/internal/errors"
	"localsearch/internal/extract"
	"localsearch/internal/tokenizer"
)

// Build walks every root directory and unions the resulting partial indexes
// into a single Index. It always rebuilds from scratch; there is no
// incremental indexing.
//
// Roots are walked in parallel. A root that cannot be read contributes no
// documents; the other roots are unaffected.
func Build(roots []string) *Index {
	final := New()

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	for _, root := range roots {
		root := root
		g.Go(func() error {
			abs, err := filepath.Abs(root)
			if err != nil {
				slog.Warn("skipping unresolvable root",
					slog.String("root", root),
					slog.String("error", err.Error()))
				return nil
			}
			partial, err := walkDir(abs)
			if err != nil {
				slog.Warn("skipping unreadable root",
					slog.String("root", abs),
					slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			final.Merge(partial)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("index built",
		slog.Int("documents", final.Len()),
		slog.Int("roots", len(roots)))
	return final
}

// walkDir indexes the files directly inside dir and spawns an independent
// task per subdirectory, then waits for every subtree and merges the
// disjoint partial indexes. Fork-join over shared-nothing partials: no
// locking is needed during the walk itself, only at the merge.
//
// The returned error covers only dir's own listing; subtree failures are
// logged here and lose only that subtree.
func walkDir(dir string) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New(errors.ErrCodeDirUnreadable, err.Error(), err).WithPath(dir)
	}

	partial := New()

	// Subtree tasks run while this goroutine is still analyzing files, so
	// they must not touch the partial map; each parks its result and the
	// merge happens only after the join.
	var (
		g    errgroup.Group
		mu   sync.Mutex
		subs []*Index
	)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			g.Go(func() error {
				sub, err := walkDir(path)
				if err != nil {
					slog.Warn("skipping unreadable subtree",
						slog.String("dir", path),
						slog.String("error", err.Error()))
					return nil
				}
				mu.Lock()
				subs = append(subs, sub)
				mu.Unlock()
				return nil
			})
			continue
		}
		if doc, ok := analyzeFile(path); ok {
			partial.Documents[path] = doc
		}
	}
	_ = g.Wait()

	for _, sub := range subs {
		partial.Merge(sub)
	}
	return partial, nil
}

// analyzeFile extracts and tokenizes a single file. Extraction failures are
// expected outcomes; they are logged and the file is skipped.
func analyzeFile(path string) (Document, bool) {
	text, err := extract.Text(path)
	if err != nil {
		logSkip(path, err)
		return Document{}, false
	}
	return Document{Terms: tokenizer.Frequencies(text)}, true
}

// logSkip logs a skipped file at a level matching how expected the outcome is.
func logSkip(path string, err error) {
	switch errors.GetCode(err) {
	case errors.ErrCodeUnsupportedFile:
		slog.Debug("skipping non-indexable file", slog.String("path", path))
	default:
		slog.Warn("skipping file",
			slog.String("path", path),
			slog.String("code", errors.GetCode(err)),
			slog.String("error", err.Error()))
	}
}
