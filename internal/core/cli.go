package core

import (
	"fmt"
	"path/filepath"
)

const DefaultBaseURL = "http://localhost:5000"

type ValidationError struct {
	Arg   string
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Cause)
}

type Args struct {
	FilePath string
	BaseURL  string
}

// ResolveArgs maps the positional arguments onto a file path and a base URL.
// The path is not checked here; ReadTextFile reports missing or odd paths.
func ResolveArgs(args []string, defaultBaseURL string) (Args, error) {
	if len(args) == 0 {
		return Args{}, &ValidationError{Arg: "<file_path>", Cause: "no file provided"}
	}
	if len(args) > 2 {
		return Args{}, &ValidationError{Arg: args[2], Cause: "unexpected extra argument"}
	}
	if args[0] == "" {
		return Args{}, &ValidationError{Arg: "<file_path>", Cause: "empty path"}
	}

	out := Args{
		FilePath: args[0],
		BaseURL:  defaultBaseURL,
	}
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	if len(args) == 2 {
		out.BaseURL = args[1]
	}

	return out, nil
}

// Filename is the final path component used as the filename query value.
func (a Args) Filename() string {
	return filepath.Base(a.FilePath)
}
