package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ReadRows reads every row of a sheet as flat text records.
// Records are padded to the sheet's used width so that each one carries the same
// number of fields. Empty cells become "", numeric cells formatted as dates become
// "YYYY-MM-DD HH:MM:SS", booleans become TRUE or FALSE, and every other cell keeps
// its raw stored value.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	_, width, err := UsedRange(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	r := &rowReader{f: f, sheet: sheetName, date1904: date1904, dateStyles: make(map[int]bool)}

	var result [][]string
	for rowNum := 1; rows.Next(); rowNum++ {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		n := width
		if len(cols) > n {
			n = len(cols)
		}
		record := make([]string, n)
		for colIdx, raw := range cols {
			if raw == "" {
				continue
			}
			record[colIdx] = r.render(colIdx+1, rowNum, raw)
		}
		result = append(result, record)
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	return result, nil
}

type rowReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

// render turns a raw stored value into its flat text form.
func (r *rowReader) render(col, row int, raw string) string {
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	cellType, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return raw
	}
	switch cellType {
	case excelize.CellTypeBool:
		if num != 0 {
			return "TRUE"
		}
		return "FALSE"
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if !r.isDateCell(cellName) {
			return raw
		}
		t, err := excelize.ExcelDateToTime(num, r.date1904)
		if err != nil {
			return raw
		}
		return t.Format(TimestampLayout)
	}
	return raw
}

func (r *rowReader) isDateCell(cellName string) bool {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}
	style, err := r.f.GetStyle(styleID)
	isDate := err == nil && IsDateStyle(style)
	r.dateStyles[styleID] = isDate
	return isDate
}
