package models

// StyleTemplate names the model rows that carry the data-table styling.
type StyleTemplate struct {
	// OddRow styles output rows with an odd absolute index.
	OddRow int `json:"odd_row"`
	// EvenRow styles output rows with an even absolute index.
	EvenRow int `json:"even_row"`
	// TailRow styles the last row of the last output file. Zero means the model's last used row.
	TailRow int `json:"tail_row,omitempty"`
}

// RowFor returns the reference row for an absolute output row index.
func (t StyleTemplate) RowFor(row int) int {
	if row%2 == 1 {
		return t.OddRow
	}
	return t.EvenRow
}
