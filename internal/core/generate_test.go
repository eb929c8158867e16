package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerate(t *testing.T) {
	t.Run("notes.txt with default base url", func(t *testing.T) {
		path := setupTestFile(t, "notes.txt", []byte("hello"))
		rep, out, errOut := newTestReporter()

		res, err := Generate(context.Background(), Options{
			Args: Args{FilePath: path, BaseURL: DefaultBaseURL},
		}, rep, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(res.URL, "http://localhost:5000?content=") {
			t.Errorf("unexpected url prefix: %s", res.URL)
		}
		if !strings.Contains(res.URL, "&compressed=1&filename=notes.txt") {
			t.Errorf("unexpected url params: %s", res.URL)
		}
		if errOut.Len() != 0 {
			t.Errorf("expected empty stderr, got %q", errOut.String())
		}

		text := out.String()
		order := []string{
			"Reading file: " + path,
			"File Information:",
			"  Name: notes.txt",
			"  Size: 5 bytes",
			"  Lines: 1",
			"Generating URL...",
			"Generated URL:",
			"URL: " + res.URL,
			"URL copied to clipboard",
		}
		last := -1
		for _, s := range order {
			idx := strings.Index(text, s)
			if idx < 0 {
				t.Fatalf("missing %q in output:\n%s", s, text)
			}
			if idx < last {
				t.Errorf("%q printed out of order", s)
			}
			last = idx
		}

		got, err := DecodeToken(res.Link.Token)
		if err != nil {
			t.Fatal(err)
		}
		if got != "hello" {
			t.Errorf("expected round trip to hello, got %q", got)
		}
	})

	t.Run("nonexistent path prints no url", func(t *testing.T) {
		rep, out, _ := newTestReporter()

		_, err := Generate(context.Background(), Options{
			Args: Args{FilePath: filepath.Join(t.TempDir(), "nope.txt"), BaseURL: DefaultBaseURL},
		}, rep, discardLogger())

		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if strings.Contains(out.String(), "URL:") {
			t.Errorf("expected no url on stdout, got %s", out.String())
		}
	})

	t.Run("invalid utf-8 warns and succeeds", func(t *testing.T) {
		path := setupTestFile(t, "legacy.txt", []byte{0xff, 0xfe, 'o', 'k'})
		rep, _, errOut := newTestReporter()

		res, err := Generate(context.Background(), Options{
			Args:   Args{FilePath: path, BaseURL: DefaultBaseURL},
			Verify: true,
		}, rep, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(errOut.String(), "Warning: File encoded with latin-1, converted to UTF-8") {
			t.Errorf("expected latin-1 warning, got %q", errOut.String())
		}
		if !strings.HasPrefix(res.URL, DefaultBaseURL+"?content=") {
			t.Errorf("unexpected url: %s", res.URL)
		}
		if res.Info.Size != len("ÿþok") {
			t.Errorf("expected size of decoded text, got %d", res.Info.Size)
		}
	})

	t.Run("crlf file is measured and encoded with lf endings", func(t *testing.T) {
		path := setupTestFile(t, "win.txt", []byte("a\r\nb\r\n"))
		rep, out, _ := newTestReporter()

		res, err := Generate(context.Background(), Options{
			Args: Args{FilePath: path, BaseURL: DefaultBaseURL},
		}, rep, discardLogger())
		if err != nil {
			t.Fatal(err)
		}
		if res.Info.Size != 4 {
			t.Errorf("expected size 4, got %d", res.Info.Size)
		}
		if res.Info.Lines != 2 {
			t.Errorf("expected 2 lines, got %d", res.Info.Lines)
		}
		if !strings.Contains(out.String(), "  Size: 4 bytes\n") {
			t.Errorf("unexpected report:\n%s", out.String())
		}

		got, err := DecodeToken(res.Link.Token)
		if err != nil {
			t.Fatal(err)
		}
		if got != "a\nb\n" {
			t.Errorf("expected round trip to %q, got %q", "a\nb\n", got)
		}
	})

	t.Run("custom limit triggers warning", func(t *testing.T) {
		path := setupTestFile(t, "a.txt", []byte("some text"))
		rep, out, _ := newTestReporter()

		_, err := Generate(context.Background(), Options{
			Args:         Args{FilePath: path, BaseURL: DefaultBaseURL},
			MaxURLLength: 10,
		}, rep, discardLogger())
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "longer than 10 characters") {
			t.Errorf("expected advisory with custom limit, got %s", out.String())
		}
	})

	t.Run("cancelled context stops before compression", func(t *testing.T) {
		path := setupTestFile(t, "a.txt", []byte("text"))
		rep, out, _ := newTestReporter()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Generate(ctx, Options{
			Args: Args{FilePath: path, BaseURL: DefaultBaseURL},
		}, rep, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if strings.Contains(out.String(), "File Information") {
			t.Error("expected no report after cancellation")
		}
	})
}
