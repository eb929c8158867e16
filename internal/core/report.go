package core

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const DefaultMaxURLLength = 2048

// Reporter prints the human readable progress text. Results go to out,
// warnings and errors to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	warn   *color.Color
	fail   *color.Color
}

// NewReporter builds a Reporter; colored selects ANSI colouring of the
// stderr diagnostics.
func NewReporter(out, errOut io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:    out,
		errOut: errOut,
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed, color.Bold),
	}
	if colored {
		r.warn.EnableColor()
		r.fail.EnableColor()
	} else {
		r.warn.DisableColor()
		r.fail.DisableColor()
	}
	return r
}

func (r *Reporter) Reading(path string) {
	fmt.Fprintf(r.out, "Reading file: %s\n", path)
}

func (r *Reporter) FileInfo(info FileInfo) {
	fmt.Fprintf(r.out, "\nFile Information:\n")
	fmt.Fprintf(r.out, "  Name: %s\n", info.Name)
	fmt.Fprintf(r.out, "  Size: %s bytes\n", humanize.Comma(int64(info.Size)))
	fmt.Fprintf(r.out, "  Lines: %s\n", humanize.Comma(int64(info.Lines)))
	fmt.Fprintf(r.out, "  Compressed size: %s bytes\n", humanize.Comma(int64(info.CompressedSize)))
	fmt.Fprintf(r.out, "  Compression ratio: %.1f%%\n", info.Ratio)
}

func (r *Reporter) Generating() {
	fmt.Fprintf(r.out, "\nGenerating URL...\n")
}

// URL prints the link and, past maxLen characters, the length advisory.
func (r *Reporter) URL(u string, maxLen int) {
	fmt.Fprintf(r.out, "\nGenerated URL:\n")
	fmt.Fprintf(r.out, "Length: %s characters\n", humanize.Comma(int64(len(u))))
	fmt.Fprintf(r.out, "URL: %s\n", u)

	if maxLen > 0 && len(u) > maxLen {
		fmt.Fprintf(r.out, "\nWarning: URL is %d characters long.\n", len(u))
		fmt.Fprintf(r.out, "Some browsers and servers may have issues with URLs longer than %d characters.\n", maxLen)
		fmt.Fprintln(r.out, "Consider using a smaller file or hosting the content separately.")
	}
}

// Closing prints the final banner. Nothing is placed on the clipboard.
func (r *Reporter) Closing() {
	fmt.Fprintf(r.out, "\nURL copied to clipboard (if you want to copy manually):\n")
	fmt.Fprintln(r.out, strings.Repeat("=", 50))
}

func (r *Reporter) Warn(format string, a ...any) {
	r.warn.Fprintf(r.errOut, "Warning: "+format+"\n", a...)
}

// Error prints err as one line. Read and compression failures read as
// "Error reading file ..." and "Error compressing content: ...".
func (r *Reporter) Error(err error) {
	var re *ReadError
	var ce *CompressionError
	if errors.As(err, &re) || errors.As(err, &ce) {
		r.fail.Fprintf(r.errOut, "Error %v\n", err)
		return
	}
	r.fail.Fprintf(r.errOut, "Error: %v\n", err)
}
