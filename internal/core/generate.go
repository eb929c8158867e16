package core

import (
	"context"
	"errors"
	"log/slog"
)

var ErrVerifyMismatch = errors.New("decoded token does not match file content")

type Options struct {
	Args
	MaxURLLength int
	Verify       bool
}

type Result struct {
	File *TextFile
	Info FileInfo
	Link *ShareLink
	URL  string
}

// Generate runs the pipeline: read, compress, report, build the link, print.
// Any error is terminal and nothing after the failing stage is printed.
func Generate(ctx context.Context, opts Options, rep *Reporter, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	maxLen := opts.MaxURLLength
	if maxLen == 0 {
		maxLen = DefaultMaxURLLength
	}

	rep.Reading(opts.FilePath)
	file, err := ReadTextFile(opts.FilePath)
	if err != nil {
		return nil, err
	}
	if file.Latin1Fallback() {
		rep.Warn("File encoded with latin-1, converted to UTF-8")
	}
	logger.Debug("file read",
		"path", file.Path(),
		"bytes", len(file.Content()),
		"latin1", file.Latin1Fallback(),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enc, err := CompressAndEncode(file.Content())
	if err != nil {
		return nil, err
	}
	logger.Debug("content compressed",
		"size", enc.OriginalSize,
		"compressed_size", enc.CompressedSize,
		"token_length", len(enc.Token),
	)

	info := NewFileInfo(file.Name(), file.Content(), enc.CompressedSize)
	rep.FileInfo(info)

	rep.Generating()
	link := NewShareLink(opts.BaseURL, opts.Filename(), enc.Token)
	u := link.String()

	if opts.Verify {
		decoded, err := DecodeToken(link.Token)
		if err != nil {
			return nil, &CompressionError{Err: err}
		}
		if decoded != file.Content() {
			return nil, &CompressionError{Err: ErrVerifyMismatch}
		}
		logger.Debug("token verified")
	}

	rep.URL(u, maxLen)
	if len(u) > maxLen {
		logger.Debug("url exceeds advisory length", "url_length", len(u), "max", maxLen)
	}
	rep.Closing()

	return &Result{
		File: file,
		Info: info,
		Link: link,
		URL:  u,
	}, nil
}
