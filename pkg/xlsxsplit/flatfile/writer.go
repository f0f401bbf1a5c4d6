package flatfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Writer writes flat records. Line breaks inside fields are replaced by spaces so that
// every record stays on one line; delimiters inside fields are written as they are.
type Writer struct {
	w   *bufio.Writer
	sep string

	// Collisions counts fields that contained the delimiter.
	Collisions int
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// NewWriter returns a Writer encoding records onto w.
func NewWriter(w io.Writer, delimiter rune, encoding string) (*Writer, error) {
	ew, err := encodeWriter(w, encoding)
	if err != nil {
		return nil, err
	}
	return &Writer{w: bufio.NewWriter(ew), sep: string(delimiter)}, nil
}

// Write writes one record followed by a newline.
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if _, err := w.w.WriteString(w.sep); err != nil {
				return err
			}
		}
		if strings.Contains(field, w.sep) {
			w.Collisions++
		}
		if _, err := w.w.WriteString(lineBreaks.Replace(field)); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes records to the file at path, replacing it.
// It returns the number of fields that contained the delimiter.
func WriteAll(path string, records [][]string, delimiter rune, encoding string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w, err := NewWriter(f, delimiter, encoding)
	if err != nil {
		f.Close()
		return 0, err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			f.Close()
			return w.Collisions, err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return w.Collisions, err
	}
	return w.Collisions, f.Close()
}
