package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// UsedRange returns the last used row and column of a sheet (1-based).
// The sheet dimension record and the populated cells are both consulted, so that
// styled but empty trailing cells recorded in the dimension still count.
func UsedRange(f *excelize.File, sheetName string) (maxRow, maxCol int, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, 0, err
	}
	_, lastRow, _, lastCol := findDataBounds(rows)
	maxRow, maxCol = lastRow+1, lastCol+1

	dim, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return 0, 0, err
	}
	if r, c, ok := dimensionEnd(dim); ok {
		if r > maxRow {
			maxRow = r
		}
		if c > maxCol {
			maxCol = c
		}
	}
	return maxRow, maxCol, nil
}

// dimensionEnd parses the bottom-right corner of a dimension reference like "A1:H45".
func dimensionEnd(dim string) (row, col int, ok bool) {
	if dim == "" {
		return 0, 0, false
	}
	end := dim
	if idx := strings.LastIndex(dim, ":"); idx >= 0 {
		end = dim[idx+1:]
	}
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(end, "$", ""))
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when rows holds no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
