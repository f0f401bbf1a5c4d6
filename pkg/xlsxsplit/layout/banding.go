package layout

import (
	"fmt"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
)

// ApplyBanding styles every row from tableStartRow to the grid's last populated row
// with the odd or even reference row of tmpl, chosen by the parity of the absolute
// output row. Custom heights of the reference rows are carried over, column widths
// follow the model.
// Model merges are then declared verbatim, and each merge anchored on the odd
// reference row is repeated on every banded row.
func ApplyBanding(m *Model, g *Grid, tableStartRow int, tmpl models.StyleTemplate) error {
	last := g.MaxRow()

	for row := tableStartRow; row <= last; row++ {
		ref := tmpl.RowFor(row)
		for col := 1; col <= m.MaxCol; col++ {
			if err := g.CopyStyle(row, col, ref); err != nil {
				return fmt.Errorf("style row %d from model row %d: %w", row, ref, err)
			}
		}
		if err := copyRowHeight(m, g, row, ref); err != nil {
			return err
		}
	}

	if err := copyColumnWidths(m, g); err != nil {
		return err
	}
	if err := copyMerges(m, g); err != nil {
		return err
	}

	for _, tpl := range RowMergeTemplates(m.Merges, tmpl.OddRow) {
		for row := tableStartRow; row <= last; row++ {
			if _, err := g.Merge(models.Region{R1: row, C1: tpl.C1, R2: row, C2: tpl.C2}); err != nil {
				return err
			}
		}
	}
	return nil
}

// RowMergeTemplates returns the merges whose top row is refRow.
func RowMergeTemplates(merges []models.Region, refRow int) []models.Region {
	var out []models.Region
	for _, r := range merges {
		if r.R1 == refRow {
			out = append(out, r)
		}
	}
	return out
}
