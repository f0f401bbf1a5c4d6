package layout

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	fixtureSheet      = "Template"
	fixtureHeaderRows = 2
	fixtureStartRow   = 3
	fixtureOddRow     = 3
	fixtureEvenRow    = 4
	fixtureTailRow    = 5
)

// writeModel saves a small model workbook:
// rows 1-2 are headers (A1:E1 merged, C2 a formula, row 2 taller than default), row 3 is the odd reference row (bold, B3:C3 merged),
// row 4 the even reference row (italic, B4:C4 merged) and row 5 the tail row (strike).
func writeModel(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", fixtureSheet))

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 14}})
	require.NoError(t, err)
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 12}})
	require.NoError(t, err)
	odd, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	even, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	require.NoError(t, err)
	tail, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Strike: true}})
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue(fixtureSheet, "A1", "Monthly report"))
	require.NoError(t, f.SetCellStyle(fixtureSheet, "A1", "E1", title))
	require.NoError(t, f.MergeCell(fixtureSheet, "A1", "E1"))

	for cell, v := range map[string]string{"A2": "Code", "B2": "Label", "D2": "Amount", "E2": "Date"} {
		require.NoError(t, f.SetCellValue(fixtureSheet, cell, v))
	}
	require.NoError(t, f.SetCellFormula(fixtureSheet, "C2", "LEN(B2)"))
	require.NoError(t, f.SetCellStyle(fixtureSheet, "A2", "E2", header))
	require.NoError(t, f.SetRowHeight(fixtureSheet, 2, 30))

	require.NoError(t, f.SetCellStyle(fixtureSheet, "A3", "E3", odd))
	require.NoError(t, f.MergeCell(fixtureSheet, "B3", "C3"))
	require.NoError(t, f.SetRowHeight(fixtureSheet, 3, 18))

	require.NoError(t, f.SetCellStyle(fixtureSheet, "A4", "E4", even))
	require.NoError(t, f.MergeCell(fixtureSheet, "B4", "C4"))
	require.NoError(t, f.SetRowHeight(fixtureSheet, 4, 22))

	require.NoError(t, f.SetCellStyle(fixtureSheet, "A5", "E5", tail))

	require.NoError(t, f.SetColWidth(fixtureSheet, "A", "A", 12))
	require.NoError(t, f.SetColWidth(fixtureSheet, "B", "B", 20))
	require.NoError(t, f.SetColWidth(fixtureSheet, "E", "E", 15))

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "'Template'!$A$1:$E$5",
		Scope:    fixtureSheet,
	}))

	path := filepath.Join(t.TempDir(), "model.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func openModel(t *testing.T) *Model {
	t.Helper()
	m, err := OpenModel(writeModel(t))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func newGrid(t *testing.T, m *Model, policy MergePolicy) *Grid {
	t.Helper()
	g, err := NewGrid(m, "Report", policy)
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })
	return g
}

// cellFont returns the font applied to a cell, nil when the cell has no style.
func cellFont(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Font {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	if id == 0 {
		return nil
	}
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style.Font
}

// rowHasHeight reports whether the saved workbook at path writes an explicit height for row.
func rowHasHeight(t *testing.T, path string, row int) bool {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, zf := range zr.File {
		if zf.Name != "xl/worksheets/sheet1.xml" {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)

		tag := regexp.MustCompile(fmt.Sprintf(`<row r="%d"[^>]*>`, row)).Find(data)
		require.NotNil(t, tag, "row %d not written", row)
		return regexp.MustCompile(`\sht="`).Match(tag)
	}
	t.Fatalf("no worksheet in %s", path)
	return false
}
