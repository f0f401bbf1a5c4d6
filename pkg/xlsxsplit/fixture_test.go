package xlsxsplit

import (
	"fmt"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/flatfile"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/xuri/excelize/v2"
)

const modelSheet = "Statement"

// testOptions mirrors DefaultOptions with an explicit tail row.
func testOptions() Options {
	opts := DefaultOptions()
	opts.Styles = models.StyleTemplate{OddRow: 13, EvenRow: 14, TailRow: 15}
	return opts
}

// writeModel saves a model workbook laid out like the reference report:
// header rows 1-12 (A1:D1 merged), odd reference row 13 (bold, B13:C13 merged),
// even reference row 14 (italic) and tail row 15 (strike), print area A1:E15.
func writeModel(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", modelSheet))

	newStyle := func(font excelize.Font) int {
		id, err := f.NewStyle(&excelize.Style{Font: &font})
		require.NoError(t, err)
		return id
	}
	title := newStyle(excelize.Font{Size: 16})
	odd := newStyle(excelize.Font{Bold: true})
	even := newStyle(excelize.Font{Italic: true})
	tail := newStyle(excelize.Font{Strike: true})

	require.NoError(t, f.SetCellValue(modelSheet, "A1", "Quarterly statement"))
	require.NoError(t, f.SetCellStyle(modelSheet, "A1", "D1", title))
	require.NoError(t, f.MergeCell(modelSheet, "A1", "D1"))
	require.NoError(t, f.SetSheetRow(modelSheet, "A12", &[]interface{}{"Code", "Label", "", "Amount", "Date"}))

	require.NoError(t, f.SetCellStyle(modelSheet, "A13", "E13", odd))
	require.NoError(t, f.MergeCell(modelSheet, "B13", "C13"))
	require.NoError(t, f.SetCellStyle(modelSheet, "A14", "E14", even))
	require.NoError(t, f.SetCellStyle(modelSheet, "A15", "E15", tail))
	require.NoError(t, f.SetColWidth(modelSheet, "B", "B", 24))

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "'Statement'!$A$1:$E$15",
		Scope:    modelSheet,
	}))

	path := filepath.Join(dir, "model.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// writeSource saves a flat file with 12 header records followed by dataRows records
// whose first field counts from 1.
func writeSource(t *testing.T, dir string, dataRows int) string {
	t.Helper()

	records := make([][]string, 0, 12+dataRows)
	records = append(records, []string{"Quarterly statement", "", "", "", ""})
	for i := 2; i < 12; i++ {
		records = append(records, []string{""})
	}
	records = append(records, []string{"Code", "Label", "", "Amount", "Date"})
	for i := 1; i <= dataRows; i++ {
		records = append(records, []string{
			strconv.Itoa(i),
			fmt.Sprintf("Item %d", i),
			"",
			fmt.Sprintf("%d.5", i),
			"2023-12-31 00:00:00",
		})
	}

	path := filepath.Join(dir, "source.csv")
	_, err := flatfile.WriteAll(path, records, DefaultDelimiter, flatfile.UTF8)
	require.NoError(t, err)
	return path
}

func openOutput(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
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
