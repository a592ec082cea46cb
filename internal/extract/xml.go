package extract

import (
	"bufio"
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"strings"

	"localsearch/internal/errors"
)

// XML extracts the character data of an XML or XHTML document: every
// character-data event's text, concatenated with single spaces.
//
// The decoder runs in non-strict mode so common malformations pass through.
// A hard decode error is logged and ends extraction early, keeping whatever
// text accumulated before it; a corrupt tail never discards the file and
// never aborts the walk.
func XML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.New(errors.ErrCodeFileUnreadable, err.Error(), err).WithPath(path)
	}
	defer f.Close()

	d := xml.NewDecoder(bufio.NewReader(f))
	d.Strict = false

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("xml decode error, keeping partial text",
				slog.String("path", path),
				slog.String("error", err.Error()))
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			text.Write(cd)
			text.WriteByte(' ')
		}
	}

	return text.String(), nil
}
