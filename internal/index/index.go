// Package index builds, holds, and persists the document index: a mapping
// from absolute file path to that file's term-frequency map.
package index

// Document owns the normalized term counts for one extracted file.
// Documents are replaced wholesale on reindex, never mutated incrementally.
type Document struct {
	// Terms maps normalized term to occurrence count.
	Terms map[string]int
}

// Index maps document identity (absolute path) to its Document.
//
// An Index is built once and then treated as read-only by queries; a rebuild
// constructs a fresh Index and replaces the old one rather than mutating it
// in place.
type Index struct {
	// Documents is keyed by absolute filesystem path.
	Documents map[string]Document
}

// New returns an empty Index.
func New() *Index {
	return &Index{Documents: make(map[string]Document)}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.Documents)
}

// Merge unions other into ix. Key sets from sibling subtrees are disjoint
// (paths are unique), so this is a plain union with no conflict resolution.
func (ix *Index) Merge(other *Index) {
	if other == nil {
		return
	}
	for path, doc := range other.Documents {
		ix.Documents[path] = doc
	}
}
