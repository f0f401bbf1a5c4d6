package layout

import (
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/parser"
	"github.com/xuri/excelize/v2"
)

// ApplyPrintArea gives the grid a print area spanning the columns of the model's
// first print area and rows 1 to the grid's last populated row.
// Grids whose model has no print area are left untouched.
func ApplyPrintArea(m *Model, g *Grid) error {
	if len(m.PrintAreas) == 0 || g.MaxRow() == 0 {
		return nil
	}
	area := m.PrintAreas[0]
	ref, err := parser.PrintAreaReference(g.Sheet, models.Region{R1: 1, C1: area.C1, R2: g.MaxRow(), C2: area.C2})
	if err != nil {
		return err
	}
	return g.File.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: ref,
		Scope:    g.Sheet,
	})
}
