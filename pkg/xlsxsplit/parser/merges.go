package parser

import (
	"strings"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMerges returns the merged-cell regions of a sheet in declaration order.
func ExtractMerges(f *excelize.File, sheetName string) ([]models.Region, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	regions := make([]models.Region, 0, len(merged))
	for _, mc := range merged {
		region := parseRangeToRegion(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if region == nil {
			continue
		}
		regions = append(regions, *region)
	}
	return regions, nil
}

// parseRangeToRegion parses a range string like $A$1:$D$10 to a Region.
func parseRangeToRegion(rangeStr string) *models.Region {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Region{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
