package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Source is a piece of code ready for review.
type Source struct {
	Code     string
	Filename string
}

// Load reads a source file. The stored filename is the path's base name,
// which is what the prompt metadata wants.
func Load(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return decode(filepath.Base(path), data), nil
}

// FromReader reads source code from r, e.g. stdin. name may be empty when
// there is no meaningful filename.
func FromReader(name string, r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("reading input: %w", err)
	}
	return decode(name, data), nil
}

// decode interprets data as UTF-8 and falls back to Latin-1 when the bytes
// are not valid UTF-8, so no submission is ever rejected for its encoding.
func decode(name string, data []byte) Source {
	if utf8.Valid(data) {
		return Source{Code: string(data), Filename: name}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 decoding cannot normally fail; keep the raw bytes.
		return Source{Code: string(data), Filename: name}
	}
	return Source{Code: string(decoded), Filename: name}
}

var languageByExt = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".tsx":   "tsx",
	".jsx":   "jsx",
	".rs":    "rust",
	".java":  "java",
	".rb":    "ruby",
	".cpp":   "cpp",
	".cc":    "cpp",
	".c":     "c",
	".h":     "c",
	".cs":    "csharp",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".sh":    "bash",
	".sql":   "sql",
	".yaml":  "yaml",
	".yml":   "yaml",
	".json":  "json",
	".tf":    "hcl",
}

// DetectLanguage maps a filename extension to a language hint suitable for
// both the prompt metadata and the code fence tag. Returns "" when unknown.
func DetectLanguage(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return languageByExt[ext]
}
