package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Region represents a rectangular merged-cell range.
type Region struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Overlaps reports whether two regions share at least one cell.
func (r Region) Overlaps(o Region) bool {
	return r.R1 <= o.R2 && o.R1 <= r.R2 && r.C1 <= o.C2 && o.C1 <= r.C2
}

// SingleCell reports whether the region covers exactly one cell.
func (r Region) SingleCell() bool {
	return r.R1 == r.R2 && r.C1 == r.C2
}

// Cells returns the top-left and bottom-right cell names, e.g. "A1" and "D1".
func (r Region) Cells() (string, string, error) {
	tl, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", "", err
	}
	br, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", "", err
	}
	return tl, br, nil
}

func (r Region) String() string {
	tl, br, err := r.Cells()
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.R1, r.C1, r.R2, r.C2)
	}
	return tl + ":" + br
}
