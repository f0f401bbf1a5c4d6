package xlsxsplit

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/layout"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates an input, model or flat file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidOptions indicates unusable partitioning options or request fields.
var ErrInvalidOptions = errors.New("invalid options")

// ErrMergeConflict indicates overlapping merged regions under the reject policy.
var ErrMergeConflict = layout.ErrMergeConflict

// SourceError represents a failure to read the input, model or flat file.
type SourceError struct {
	Path string
	Op   string // "open", "read", "write"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is matches ErrFileNotFound and ErrInvalidFormat against the underlying cause.
func (e *SourceError) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	case ErrInvalidFormat:
		return errors.Is(e.Err, zip.ErrFormat) || errors.Is(e.Err, excelize.ErrWorkbookFileFormat)
	}
	return false
}

// NewSourceError creates a new SourceError.
func NewSourceError(op, path string, err error) *SourceError {
	return &SourceError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// ChunkError represents a failure to build or save one output file.
type ChunkError struct {
	Index int // 0-based file index
	Path  string
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("output file %d (%s): %v", e.Index+1, e.Path, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
