// Package extract converts files into plain text for indexing.
//
// Dispatch is by file extension, case-sensitive, against a fixed allow-list.
// Failures are structured: unsupported, corrupt, and encrypted outcomes are
// distinguishable so the walker can log and skip without aborting the
// surrounding directory walk.
package extract

import (
	"path/filepath"
	"strings"

	"localsearch/internal/errors"
)

// Func extracts plain text from the file at path.
type Func func(path string) (string, error)

// byExtension is the closed registry of supported formats. Adding a format
// is adding one entry plus one extraction function.
var byExtension = map[string]Func{
	"xml":   XML,
	"xhtml": XML,
	"pdf":   PDF,
}

// Text extracts plain text from the file at path.
//
// Files with no extension, or an extension outside the allow-list, return
// ErrCodeUnsupportedFile. That outcome is expected and non-fatal; callers
// skip the file and continue.
func Text(path string) (string, error) {
	ext := extension(path)
	if ext == "" {
		return "", errors.Unsupported(path)
	}
	fn, ok := byExtension[ext]
	if !ok {
		return "", errors.Unsupported(path)
	}
	return fn(path)
}

// Supported reports whether the path's extension is in the allow-list.
func Supported(path string) bool {
	_, ok := byExtension[extension(path)]
	return ok
}

// extension returns the file extension without the leading dot, preserving
// case: dispatch is deliberately case-sensitive ("XML" is not indexable).
func extension(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimPrefix(ext, ".")
}
