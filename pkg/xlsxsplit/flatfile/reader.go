package flatfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// maxRecordSize bounds a single record; wide sheets produce long lines.
const maxRecordSize = 16 << 20

// ReadAll reads every record of the flat file at path.
func ReadAll(path string, delimiter rune, encoding string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, delimiter, encoding)
}

// Read reads every record from r. Blank lines are records with one empty field,
// so row positions are preserved. A trailing carriage return is dropped.
func Read(r io.Reader, delimiter rune, encoding string) ([][]string, error) {
	dr, err := decodeReader(r, encoding)
	if err != nil {
		return nil, err
	}

	sep := string(delimiter)
	scanner := bufio.NewScanner(dr)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	var records [][]string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		records = append(records, strings.Split(line, sep))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
