package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"texturl/internal/config"
	"texturl/internal/core"
)

const example = `  texturl example.txt
  texturl /path/to/file.py https://myapp.com
  texturl document.md http://localhost:8080`

type flags struct {
	configPath   string
	verbose      bool
	verify       bool
	maxURLLength int
}

// NewRootCommand builds the texturl command writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "texturl <file_path> [base_url]",
		Short: "Generate shareable URL for Text File Editor SPA",
		Long: `Compress a text file and print a URL carrying the content for the
Text File Editor SPA.

  file_path  Path to the text file to compress and encode
  base_url   Base URL for the SPA (default: ` + core.DefaultBaseURL + `)`,
		Example:       example,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML config file (env TEXTURL_CONFIG)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log pipeline stages to stderr")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "Decode the generated token and compare it with the file before printing")
	cmd.Flags().IntVar(&f.maxURLLength, "max-url-length", 0, "URL length that triggers the size warning (default 2048)")

	return cmd
}

func run(ctx context.Context, args []string, f flags, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, f.verbose)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	parsed, err := core.ResolveArgs(args, cfg.BaseURL)
	if err != nil {
		return err
	}

	opts := core.Options{
		Args:         parsed,
		MaxURLLength: cfg.MaxURLLength,
		Verify:       f.verify,
	}
	if f.maxURLLength > 0 {
		opts.MaxURLLength = f.maxURLLength
	}

	logger.Debug("configuration loaded",
		"base_url", opts.BaseURL,
		"max_url_length", opts.MaxURLLength,
		"verify", opts.Verify,
	)

	rep := core.NewReporter(stdout, stderr, colorEnabled(stderr))
	_, err = core.Generate(ctx, opts, rep, logger)
	return err
}

// Execute runs the command with args and returns the process exit status.
// Every error is terminal and reported as a single line on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		core.NewReporter(stdout, stderr, colorEnabled(stderr)).Error(err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && isatty.IsTerminal(f.Fd())
}
