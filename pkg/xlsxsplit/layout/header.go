package layout

import "fmt"

// CopyHeader copies rows 1..headerRows of the model into the grid: values as stored,
// formulas, styles and custom row heights, followed by every column width and every
// merged region of the model at the same coordinates.
func CopyHeader(m *Model, g *Grid, headerRows int) error {
	for row := 1; row <= headerRows; row++ {
		for col := 1; col <= m.MaxCol; col++ {
			value, formula, err := m.Value(row, col)
			if err != nil {
				return fmt.Errorf("read header cell R%dC%d: %w", row, col, err)
			}
			if formula != "" {
				err = g.SetFormula(row, col, formula)
			} else {
				err = g.SetValue(row, col, value)
			}
			if err != nil {
				return fmt.Errorf("write header cell R%dC%d: %w", row, col, err)
			}
			if err := g.CopyStyle(row, col, row); err != nil {
				return fmt.Errorf("style header cell R%dC%d: %w", row, col, err)
			}
		}

		if err := copyRowHeight(m, g, row, row); err != nil {
			return err
		}
	}

	if err := copyColumnWidths(m, g); err != nil {
		return err
	}
	return copyMerges(m, g)
}

// copyRowHeight gives grid row dst the height of model row src when that height is custom.
func copyRowHeight(m *Model, g *Grid, dst, src int) error {
	height, custom, err := m.RowHeight(src)
	if err != nil || !custom {
		return err
	}
	return g.SetRowHeight(dst, height)
}

func copyColumnWidths(m *Model, g *Grid) error {
	for col := 1; col <= m.MaxCol; col++ {
		width, err := m.ColWidth(col)
		if err != nil {
			return err
		}
		if err := g.SetColWidth(col, width); err != nil {
			return err
		}
	}
	return nil
}

// copyMerges declares every merged region of the model verbatim.
func copyMerges(m *Model, g *Grid) error {
	for _, r := range m.Merges {
		if _, err := g.Merge(r); err != nil {
			return err
		}
	}
	return nil
}
