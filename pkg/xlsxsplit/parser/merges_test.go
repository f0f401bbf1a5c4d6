package parser

import (
	"testing"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractMerges(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.MergeCell("Sheet1", "A1", "D1"); err != nil {
		t.Fatal(err)
	}
	if err := f.MergeCell("Sheet1", "B13", "C13"); err != nil {
		t.Fatal(err)
	}

	regions, err := ExtractMerges(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractMerges failed: %v", err)
	}

	want := map[models.Region]bool{
		{R1: 1, C1: 1, R2: 1, C2: 4}:   true,
		{R1: 13, C1: 2, R2: 13, C2: 3}: true,
	}
	if len(regions) != len(want) {
		t.Fatalf("Expected %d regions, got %d: %v", len(want), len(regions), regions)
	}
	for _, r := range regions {
		if !want[r] {
			t.Errorf("unexpected region %v", r)
		}
	}
}

func TestParseRangeToRegion(t *testing.T) {
	tests := []struct {
		input    string
		expected *models.Region
	}{
		{"$A$1:$D$10", &models.Region{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"D10:A1", &models.Region{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"A1", nil},
		{"A1:ZZZZ1", nil},
	}
	for _, tt := range tests {
		result := parseRangeToRegion(tt.input)
		switch {
		case tt.expected == nil && result != nil:
			t.Errorf("parseRangeToRegion(%q) = %v, expected nil", tt.input, *result)
		case tt.expected != nil && (result == nil || *result != *tt.expected):
			t.Errorf("parseRangeToRegion(%q) = %v, expected %v", tt.input, result, *tt.expected)
		}
	}
}
