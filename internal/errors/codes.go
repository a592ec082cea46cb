// Package errors provides structured error handling for localsearch.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (file, directory)
//   - 3XX: Extraction errors (unsupported, corrupt, encrypted)
//   - 4XX: Index errors (persistence)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and directory I/O errors.
	CategoryIO Category = "IO"
	// CategoryExtract indicates per-file text extraction errors.
	CategoryExtract Category = "EXTRACT"
	// CategoryIndex indicates index persistence errors.
	CategoryIndex Category = "INDEX"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeDirUnreadable  = "ERR_201_DIR_UNREADABLE"
	ErrCodeFileUnreadable = "ERR_202_FILE_UNREADABLE"

	// Extraction errors (300-399)
	ErrCodeUnsupportedFile = "ERR_301_UNSUPPORTED_FILE"
	ErrCodeFileCorrupt     = "ERR_302_FILE_CORRUPT"
	ErrCodePDFEncrypted    = "ERR_303_PDF_ENCRYPTED"

	// Index errors (400-499)
	ErrCodeCorruptIndex = "ERR_401_CORRUPT_INDEX"
	ErrCodeIndexSave    = "ERR_402_INDEX_SAVE"
	ErrCodeNoRoots      = "ERR_403_NO_ROOTS"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// The digit after "ERR_" selects the category.
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryExtract
	case '4':
		return CategoryIndex
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeCorruptIndex, ErrCodeNoRoots:
		// Corrupt persisted state forces a rebuild; no roots means there is
		// nothing to rebuild from. Both abort the load path.
		return SeverityFatal
	case ErrCodeUnsupportedFile, ErrCodeFileCorrupt, ErrCodePDFEncrypted,
		ErrCodeDirUnreadable, ErrCodeFileUnreadable:
		// Per-file and per-subtree failures degrade to a partial index.
		return SeverityWarning
	default:
		return SeverityError
	}
}
