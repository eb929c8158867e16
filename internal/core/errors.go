package core

import "fmt"

// NotFoundError is returned when the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File '%s' does not exist.", e.Path)
}

// NotAFileError is returned for directories and other non-regular entries.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("'%s' is not a file.", e.Path)
}

type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading file '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("compressing content: %v", e.Err)
}

func (e *CompressionError) Unwrap() error { return e.Err }
