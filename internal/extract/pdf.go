package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"localsearch/internal/errors"
)

// PDF extracts the text of every page of a PDF document, concatenated.
//
// Encrypted documents are skipped, not decrypted. The parser panics on some
// malformed inputs, so the whole extraction is guarded by a recover that
// degrades to a corrupt-file skip.
func PDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.Corrupt(path, fmt.Errorf("pdf parser panic: %v", r))
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		if isEncryptedErr(err) {
			return "", errors.Encrypted(path)
		}
		return "", errors.Corrupt(path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// One bad page loses only that page.
			slog.Warn("pdf page extraction failed",
				slog.String("path", path),
				slog.Int("page", i),
				slog.String("error", err.Error()))
			continue
		}
		sb.WriteString(content)
		sb.WriteByte(' ')
	}

	return sb.String(), nil
}

// isEncryptedErr reports whether the open failure was caused by encryption.
// The parser reports encryption as an invalid-password error when opened
// without one; matched on the message because the sentinel is not exported
// consistently across versions.
func isEncryptedErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "encrypted") || strings.Contains(msg, "password")
}
