package models

// RowChunk is a half-open range [Start, End) over the flat row sequence assigned to one output file.
type RowChunk struct {
	// Index is the 0-based output file index.
	Index int `json:"index"`
	// Start is the first flat row (0-based, inclusive).
	Start int `json:"start"`
	// End is the flat row after the last one (exclusive).
	End int `json:"end"`
}

// Len returns the number of data rows in the chunk.
func (c RowChunk) Len() int {
	if c.End <= c.Start {
		return 0
	}
	return c.End - c.Start
}

// Empty reports whether the chunk has no data rows (header-only output).
func (c RowChunk) Empty() bool {
	return c.Len() == 0
}
