package layout

// ApplyTail styles the grid's last populated row after model row tailRow.
// A tailRow of zero selects the model's last used row.
func ApplyTail(m *Model, g *Grid, tailRow int) error {
	if tailRow <= 0 {
		tailRow = m.MaxRow
	}
	last := g.MaxRow()
	if last == 0 || tailRow == 0 {
		return nil
	}
	for col := 1; col <= m.MaxCol; col++ {
		if err := g.CopyStyle(last, col, tailRow); err != nil {
			return err
		}
	}
	return nil
}
