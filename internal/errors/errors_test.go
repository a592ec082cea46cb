package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{code: ErrCodeConfigNotFound, want: CategoryConfig},
		{code: ErrCodeConfigInvalid, want: CategoryConfig},
		{code: ErrCodeDirUnreadable, want: CategoryIO},
		{code: ErrCodeFileUnreadable, want: CategoryIO},
		{code: ErrCodeUnsupportedFile, want: CategoryExtract},
		{code: ErrCodeFileCorrupt, want: CategoryExtract},
		{code: ErrCodePDFEncrypted, want: CategoryExtract},
		{code: ErrCodeCorruptIndex, want: CategoryIndex},
		{code: ErrCodeIndexSave, want: CategoryIndex},
		{code: ErrCodeInternal, want: CategoryInternal},
		{code: "bogus", want: CategoryInternal},
		{code: "", want: CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryFromCode(tt.code))
		})
	}
}

func TestSeverityFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Severity
	}{
		{code: ErrCodeCorruptIndex, want: SeverityFatal},
		{code: ErrCodeNoRoots, want: SeverityFatal},
		{code: ErrCodeUnsupportedFile, want: SeverityWarning},
		{code: ErrCodeFileCorrupt, want: SeverityWarning},
		{code: ErrCodePDFEncrypted, want: SeverityWarning},
		{code: ErrCodeDirUnreadable, want: SeverityWarning},
		{code: ErrCodeFileUnreadable, want: SeverityWarning},
		{code: ErrCodeIndexSave, want: SeverityError},
		{code: ErrCodeConfigInvalid, want: SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, severityFromCode(tt.code))
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	bare := New(ErrCodeIndexSave, "disk full", nil)
	assert.Equal(t, "[ERR_402_INDEX_SAVE] disk full", bare.Error())

	withPath := New(ErrCodeFileCorrupt, "bad content", nil).WithPath("/docs/a.pdf")
	assert.Equal(t, "[ERR_302_FILE_CORRUPT] /docs/a.pdf: bad content", withPath.Error())
}

func TestUnwrapAndIs(t *testing.T) {
	cause := stderrors.New("short read")
	err := Wrap(ErrCodeCorruptIndex, cause)
	require.NotNil(t, err)

	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))

	// Is matches SearchErrors by code, independent of the other fields.
	assert.True(t, stderrors.Is(err, New(ErrCodeCorruptIndex, "other message", nil)))
	assert.False(t, stderrors.Is(err, New(ErrCodeIndexSave, "other message", nil)))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name         string
		err          *SearchError
		wantCode     string
		wantCategory Category
		wantSkip     bool
		wantFatal    bool
	}{
		{
			name:         "unsupported",
			err:          Unsupported("/docs/a.txt"),
			wantCode:     ErrCodeUnsupportedFile,
			wantCategory: CategoryExtract,
			wantSkip:     true,
		},
		{
			name:         "corrupt file",
			err:          Corrupt("/docs/a.pdf", fmt.Errorf("bad xref")),
			wantCode:     ErrCodeFileCorrupt,
			wantCategory: CategoryExtract,
			wantSkip:     true,
		},
		{
			name:         "encrypted pdf",
			err:          Encrypted("/docs/secret.pdf"),
			wantCode:     ErrCodePDFEncrypted,
			wantCategory: CategoryExtract,
			wantSkip:     true,
		},
		{
			name:         "corrupt index",
			err:          CorruptIndex("/cache/index.bin", fmt.Errorf("gob: bad data")),
			wantCode:     ErrCodeCorruptIndex,
			wantCategory: CategoryIndex,
			wantFatal:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, GetCode(tt.err))
			assert.Equal(t, tt.wantCategory, GetCategory(tt.err))
			assert.Equal(t, tt.wantSkip, IsSkip(tt.err))
			assert.Equal(t, tt.wantFatal, IsFatal(tt.err))
			assert.NotEmpty(t, tt.err.Path)
		})
	}
}

func TestPredicatesOnForeignErrors(t *testing.T) {
	plain := stderrors.New("plain")
	assert.False(t, IsFatal(plain))
	assert.False(t, IsSkip(plain))
	assert.Empty(t, GetCode(plain))
	assert.Empty(t, GetCategory(plain))

	assert.False(t, IsFatal(nil))
	assert.False(t, IsSkip(nil))
}
