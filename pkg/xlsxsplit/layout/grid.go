package layout

import (
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Grid is one output workbook under construction.
// It tracks the last populated row and the merged regions declared on it;
// merges are written to the workbook when the grid is saved.
type Grid struct {
	File  *excelize.File
	Sheet string

	maxRow int
	maxCol int
	merges *MergeSet
	styles *StyleCopier
}

// NewGrid creates an empty single-sheet workbook whose sheet is named sheetName
// and whose styles are copied from model.
func NewGrid(model *Model, sheetName string, policy MergePolicy) (*Grid, error) {
	f := excelize.NewFile()
	if sheetName != "" && sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			f.Close()
			return nil, err
		}
	} else {
		sheetName = defaultSheet
	}
	return &Grid{
		File:   f,
		Sheet:  sheetName,
		merges: NewMergeSet(policy),
		styles: NewStyleCopier(model, f),
	}, nil
}

// MaxRow returns the last row holding a value or style, 0 for an empty grid.
func (g *Grid) MaxRow() int { return g.maxRow }

// MaxCol returns the last column holding a value or style, 0 for an empty grid.
func (g *Grid) MaxCol() int { return g.maxCol }

func (g *Grid) touch(row, col int) {
	if row > g.maxRow {
		g.maxRow = row
	}
	if col > g.maxCol {
		g.maxCol = col
	}
}

// SetValue writes a value. A nil value or empty string leaves the cell blank
// but still counts it as populated.
func (g *Grid) SetValue(row, col int, value interface{}) error {
	g.touch(row, col)
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok && s == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return g.File.SetCellValue(g.Sheet, cell, value)
}

// SetNormalized writes a normalized value.
func (g *Grid) SetNormalized(row, col int, v models.Value) error {
	return g.SetValue(row, col, v.Any())
}

// SetFormula writes a formula.
func (g *Grid) SetFormula(row, col int, formula string) error {
	g.touch(row, col)
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return g.File.SetCellFormula(g.Sheet, cell, formula)
}

// CopyStyle applies the style of model cell (srcRow, col) to (row, col).
// Nothing is applied when the model cell has no explicit style.
func (g *Grid) CopyStyle(row, col, srcRow int) error {
	g.touch(row, col)
	styleID, err := g.styles.Copy(srcRow, col)
	if err != nil || styleID == 0 {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return g.File.SetCellStyle(g.Sheet, cell, cell, styleID)
}

// SetColWidth sets the width of one column.
func (g *Grid) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return g.File.SetColWidth(g.Sheet, name, name, width)
}

// SetRowHeight sets the height of one row.
func (g *Grid) SetRowHeight(row int, height float64) error {
	return g.File.SetRowHeight(g.Sheet, row, height)
}

// Merge declares a merged region, subject to the grid's merge policy.
func (g *Grid) Merge(r models.Region) ([]models.Region, error) {
	return g.merges.Add(r)
}

// Merges returns the merged regions declared so far.
func (g *Grid) Merges() []models.Region {
	return g.merges.Regions()
}

// SaveAs writes the declared merges into the workbook and saves it to path.
func (g *Grid) SaveAs(path string) error {
	for _, r := range g.merges.Regions() {
		tl, br, err := r.Cells()
		if err != nil {
			return err
		}
		if err := g.File.MergeCell(g.Sheet, tl, br); err != nil {
			return err
		}
	}
	return g.File.SaveAs(path)
}

// Close releases the workbook.
func (g *Grid) Close() error {
	return g.File.Close()
}
