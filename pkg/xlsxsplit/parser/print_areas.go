package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the reserved defined name Excel stores print areas under.
const PrintAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Region {
	result := make(map[string][]models.Region)

	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, PrintAreaName) {
			sheetName, areas := parsePrintAreaReference(dn.RefersTo)
			if sheetName != "" && len(areas) > 0 {
				result[sheetName] = append(result[sheetName], areas...)
			}
		}
	}

	return result
}

// PrintAreaReference formats a region as a print area reference, e.g. 'Sheet 1'!$A$1:$D$10.
func PrintAreaReference(sheetName string, area models.Region) (string, error) {
	tl, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return "", err
	}
	br, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return "", err
	}
	quoted := "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
	return fmt.Sprintf("%s!%s:%s", quoted, tl, br), nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.Region) {
	var areas []models.Region

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by ! to separate sheet name and range
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := part[:idx]
			rangeStr := part[idx+1:]

			// Remove quotes from sheet name
			if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
				sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
			}
			if sheetName == "" {
				sheetName = sheet
			}

			if area := parseRangeToRegion(rangeStr); area != nil {
				areas = append(areas, *area)
			}
		}
	}

	return sheetName, areas
}
