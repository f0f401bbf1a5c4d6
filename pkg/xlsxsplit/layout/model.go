// Package layout builds styled output grids from a model workbook.
package layout

import (
	"fmt"
	"strconv"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/parser"
	"github.com/xuri/excelize/v2"
)

// Model is a read-only view of the workbook that supplies styles and layout.
// Only the active sheet is used.
type Model struct {
	Path   string
	Sheet  string
	MaxRow int
	MaxCol int
	// Merges lists the merged regions of the model sheet.
	Merges []models.Region
	// PrintAreas lists the print areas defined for the model sheet.
	PrintAreas []models.Region

	file          *excelize.File
	styles        map[cellKey]*excelize.Style
	defaultHeight float64
}

type cellKey struct{ row, col int }

// OpenModel opens the model workbook and reads its layout metadata.
func OpenModel(path string) (*Model, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		f.Close()
		return nil, fmt.Errorf("no active sheet in %s", path)
	}

	maxRow, maxCol, err := parser.UsedRange(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}

	merges, err := parser.ExtractMerges(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Model{
		Path:       path,
		Sheet:      sheet,
		MaxRow:     maxRow,
		MaxCol:     maxCol,
		Merges:     merges,
		PrintAreas: parser.ExtractPrintAreas(f)[sheet],
		file:          f,
		styles:        make(map[cellKey]*excelize.Style),
		defaultHeight: defaultRowHeight(f, sheet),
	}, nil
}

// excelDefaultRowHeight is the height excelize reports for rows without one.
const excelDefaultRowHeight = 15

// defaultRowHeight returns the height a row without its own height has on sheet.
func defaultRowHeight(f *excelize.File, sheet string) float64 {
	props, err := f.GetSheetProps(sheet)
	if err == nil && props.CustomHeight != nil && *props.CustomHeight && props.DefaultRowHeight != nil {
		return *props.DefaultRowHeight
	}
	return excelDefaultRowHeight
}

// Close releases the underlying workbook.
func (m *Model) Close() error {
	return m.file.Close()
}

// StyleAt returns an independent copy of the style of the model cell at (row, col).
// It returns nil when the cell carries no explicit style.
func (m *Model) StyleAt(row, col int) (*excelize.Style, error) {
	key := cellKey{row, col}
	style, ok := m.styles[key]
	if !ok {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return nil, err
		}
		styleID, err := m.file.GetCellStyle(m.Sheet, cell)
		if err != nil {
			return nil, err
		}
		if styleID != 0 {
			if style, err = m.file.GetStyle(styleID); err != nil {
				return nil, err
			}
		}
		m.styles[key] = style
	}
	if style == nil {
		return nil, nil
	}

	var clone excelize.Style
	if err := deepcopy.Copy(&clone, *style); err != nil {
		return nil, fmt.Errorf("copy style of %s R%dC%d: %w", m.Sheet, row, col, err)
	}
	return &clone, nil
}

// Value returns the typed value of a model cell and its formula, if any.
// Empty cells yield a nil value.
func (m *Model) Value(row, col int) (interface{}, string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, "", err
	}
	formula, err := m.file.GetCellFormula(m.Sheet, cell)
	if err != nil {
		return nil, "", err
	}
	raw, err := m.file.GetCellValue(m.Sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", err
	}
	if raw == "" {
		return nil, formula, nil
	}
	cellType, err := m.file.GetCellType(m.Sheet, cell)
	if err != nil {
		return nil, "", err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true", formula, nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return i, formula, nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f, formula, nil
		}
	}
	return raw, formula, nil
}

// ColWidth returns the width of a model column.
func (m *Model) ColWidth(col int) (float64, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return 0, err
	}
	return m.file.GetColWidth(m.Sheet, name)
}

// RowHeight returns the height of a model row and whether it differs from the
// sheet's default row height.
func (m *Model) RowHeight(row int) (float64, bool, error) {
	height, err := m.file.GetRowHeight(m.Sheet, row)
	if err != nil {
		return 0, false, err
	}
	return height, height != m.defaultHeight, nil
}
