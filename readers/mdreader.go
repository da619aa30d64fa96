package readers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("content is not valid utf-8")

type MarkdownFileReader struct{}

func (r *MarkdownFileReader) CanRead(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md"
}

func (r *MarkdownFileReader) ReadText(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading markdown file: %w", err)
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("reading markdown file %s: %w", path, ErrInvalidEncoding)
	}

	return normalizeNewlines(string(buf)), nil
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
