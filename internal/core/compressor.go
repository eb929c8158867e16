package core

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Token is the URL-safe text form of a compressed payload: standard base64
// with '+' and '/' replaced by '-' and '_' and no '=' padding.
type Token string

// Compress wraps data in a zlib stream at maximum compression.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}

	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to write zlib data: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zlib writer: %w", err)
	}

	return buf.Bytes(), nil
}

func EncodeToken(compressed []byte) Token {
	return Token(base64.RawURLEncoding.EncodeToString(compressed))
}

// Encoded is the outcome of one compression pass. CompressedSize is kept
// so statistics never need a second compression.
type Encoded struct {
	Token          Token
	OriginalSize   int
	CompressedSize int
}

// CompressAndEncode turns text content into a Token.
func CompressAndEncode(content string) (*Encoded, error) {
	raw := []byte(content)

	compressed, err := Compress(raw)
	if err != nil {
		return nil, &CompressionError{Err: err}
	}

	return &Encoded{
		Token:          EncodeToken(compressed),
		OriginalSize:   len(raw),
		CompressedSize: len(compressed),
	}, nil
}

// DecodeToken reverses CompressAndEncode the way the browser editor does:
// restore the standard alphabet and padding, base64-decode, inflate.
func DecodeToken(tok Token) (string, error) {
	s := strings.NewReplacer("-", "+", "_", "/").Replace(string(tok))
	if pad := len(s) % 4; pad != 0 {
		s += strings.Repeat("=", 4-pad)
	}

	compressed, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("failed to open zlib stream: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("failed to inflate: %w", err)
	}

	return string(out), nil
}
