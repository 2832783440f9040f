package lyrics

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrUnsupportedFormat is matched by *FormatError.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNotFound is returned when no lyrics file exists under any supported extension.
	ErrNotFound = fmt.Errorf("lyrics file not found: %w", fs.ErrNotExist)

	// ErrEmptyFile is returned when a lyrics file has no content.
	ErrEmptyFile = errors.New("lyrics file is empty")

	// ErrInvalidLines is matched by *TypeError.
	ErrInvalidLines = errors.New("invalid lyric lines")

	// ErrAlreadyExists is returned when saving over an existing file without overwrite.
	ErrAlreadyExists = fmt.Errorf("lyrics file already exists: %w", fs.ErrExist)
)

// FormatError reports a file extension outside the supported set.
type FormatError struct {
	Ext       string
	Supported []string
}

func (e *FormatError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file type %s, expected one of %s", ext, strings.Join(e.Supported, ", "))
}

func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// TypeError reports input that is not a usable sequence of text lines.
type TypeError struct {
	// Index of the offending element, -1 when the input as a whole is wrong.
	Index int
	// Value is the offending element or input.
	Value any
	Msg   string
}

func (e *TypeError) Error() string {
	if e.Index < 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: element %d is %T", e.Msg, e.Index, e.Value)
}

func (e *TypeError) Unwrap() error {
	return ErrInvalidLines
}
