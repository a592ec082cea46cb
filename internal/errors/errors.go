package errors

import (
	"fmt"
)

// SearchError is the structured error type for localsearch.
// It carries a stable code, a category, and a severity so callers can decide
// whether a failure skips a file, loses a subtree, or aborts a load.
type SearchError struct {
	// Code is the unique error code (e.g., "ERR_302_FILE_CORRUPT").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Extract, ...).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Path is the file or directory the error applies to, if any.
	Path string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *SearchError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with SearchError.
func (e *SearchError) Is(target error) bool {
	if t, ok := target.(*SearchError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithPath attaches the file or directory the error applies to.
// Returns the error for method chaining.
func (e *SearchError) WithPath(path string) *SearchError {
	e.Path = path
	return e
}

// New creates a new SearchError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *SearchError {
	return &SearchError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a SearchError from an existing error.
// The error's message becomes the SearchError message.
func Wrap(code string, err error) *SearchError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// Unsupported creates the expected "not an indexable format" error.
func Unsupported(path string) *SearchError {
	return New(ErrCodeUnsupportedFile, "file is binary or other non-indexable type", nil).WithPath(path)
}

// Corrupt creates a per-file corrupt content error.
func Corrupt(path string, cause error) *SearchError {
	return New(ErrCodeFileCorrupt, "file content could not be parsed", cause).WithPath(path)
}

// Encrypted creates the encrypted-PDF skip error.
func Encrypted(path string) *SearchError {
	return New(ErrCodePDFEncrypted, "pdf is encrypted", nil).WithPath(path)
}

// CorruptIndex creates the fatal persisted-index corruption error.
// Callers must fall back to a full rebuild rather than returning an
// empty index.
func CorruptIndex(path string, cause error) *SearchError {
	return New(ErrCodeCorruptIndex, "persisted index could not be decoded", cause).WithPath(path)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*SearchError); ok {
		return se.Severity == SeverityFatal
	}
	return false
}

// IsSkip reports whether the error is an expected per-file or per-subtree
// skip that the surrounding walk logs and otherwise ignores.
func IsSkip(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := err.(*SearchError); ok {
		return se.Severity == SeverityWarning
	}
	return false
}

// GetCode extracts the error code from a SearchError.
// Returns empty string if not a SearchError.
func GetCode(err error) string {
	if se, ok := err.(*SearchError); ok {
		return se.Code
	}
	return ""
}

// GetCategory extracts the category from a SearchError.
// Returns empty string if not a SearchError.
func GetCategory(err error) Category {
	if se, ok := err.(*SearchError); ok {
		return se.Category
	}
	return ""
}
