package flatfile

import (
	"strings"
	"unicode"
)

// CleanOptions configures the cleaning pass.
type CleanOptions struct {
	Delimiter rune
	Encoding  string
	// HeaderRows leading records are copied untouched.
	HeaderRows int
}

// CleanStats reports what the cleaning pass did.
type CleanStats struct {
	Read    int
	Written int
	Dropped int
}

// Clean copies the flat file src to dst, tidying data records on the way: fields are
// stripped of surrounding whitespace, non-breaking spaces become plain spaces, control
// characters are removed, and records left with only empty fields are dropped.
func Clean(src, dst string, opts CleanOptions) (CleanStats, error) {
	records, err := ReadAll(src, opts.Delimiter, opts.Encoding)
	if err != nil {
		return CleanStats{}, err
	}

	stats := CleanStats{Read: len(records)}
	kept := make([][]string, 0, len(records))
	for i, record := range records {
		if i < opts.HeaderRows {
			kept = append(kept, record)
			continue
		}
		cleaned, blank := CleanRecord(record)
		if blank {
			stats.Dropped++
			continue
		}
		kept = append(kept, cleaned)
	}

	if _, err := WriteAll(dst, kept, opts.Delimiter, opts.Encoding); err != nil {
		return stats, err
	}
	stats.Written = len(kept)
	return stats, nil
}

// CleanRecord returns the tidied fields of one record and whether all of them are empty.
func CleanRecord(record []string) ([]string, bool) {
	out := make([]string, len(record))
	blank := true
	for i, field := range record {
		out[i] = cleanField(field)
		if out[i] != "" {
			blank = false
		}
	}
	return out, blank
}

func cleanField(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0' || r == '\u202f':
			return ' '
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
