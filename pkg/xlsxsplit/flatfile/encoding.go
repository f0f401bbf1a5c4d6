// Package flatfile reads and writes the delimited intermediate representation of a worksheet:
// one newline-terminated record per row, fields joined by a single delimiter, no quoting.
package flatfile

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Supported encoding names.
const (
	UTF8        = "utf-8"
	Windows1252 = "windows-1252"
	ISO88591    = "iso-8859-1"
	ISO885915   = "iso-8859-15"
)

// Encoding returns the text encoding registered under name.
// UTF-8 (and the empty name) returns nil: bytes are used as they are.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", UTF8, "utf8":
		return nil, nil
	case Windows1252, "cp1252":
		return charmap.Windows1252, nil
	case ISO88591, "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case ISO885915, "latin9":
		return charmap.ISO8859_15, nil
	}
	return nil, fmt.Errorf("unsupported flat file encoding: %s", name)
}

func decodeReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Encoding(name)
	if err != nil || enc == nil {
		return r, err
	}
	return enc.NewDecoder().Reader(r), nil
}

func encodeWriter(w io.Writer, name string) (io.Writer, error) {
	enc, err := Encoding(name)
	if err != nil || enc == nil {
		return w, err
	}
	return encoding.ReplaceUnsupported(enc.NewEncoder()).Writer(w), nil
}
