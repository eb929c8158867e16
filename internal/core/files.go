package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// TextFile is the decoded content of one input file.
type TextFile struct {
	path    string
	name    string
	content string
	latin1  bool
}

func (f *TextFile) Path() string {
	return f.path
}

func (f *TextFile) Name() string {
	return f.name
}

func (f *TextFile) Content() string {
	return f.content
}

// Latin1Fallback reports whether the bytes were not valid UTF-8 and were
// decoded as ISO-8859-1 instead.
func (f *TextFile) Latin1Fallback() bool {
	return f.latin1
}

// ReadTextFile loads path as text. Invalid UTF-8 is decoded as Latin-1;
// the file on disk is left untouched. "\r\n" and "\r" line endings are
// read as "\n".
func ReadTextFile(path string) (*TextFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &NotAFileError{Path: path}
	}

	raw, err := readAll(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	tf := &TextFile{
		path: path,
		name: filepath.Base(path),
	}

	if utf8.Valid(raw) {
		tf.content = normalizeNewlines(string(raw))
		return tf, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("latin-1 fallback: %w", err)}
	}
	tf.content = normalizeNewlines(string(decoded))
	tf.latin1 = true

	return tf, nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	return newlineReplacer.Replace(s)
}

func readAll(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}
