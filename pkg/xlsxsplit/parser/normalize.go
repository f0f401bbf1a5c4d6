package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
)

const (
	// TimestampLayout is the layout flat files carry timestamps in.
	TimestampLayout = "2006-01-02 15:04:05"
	// DateLayout is the layout dates are written to output grids in (DD/MM/YYYY).
	DateLayout = "02/01/2006"

	// timestampInputLayout matches TimestampLayout with or without zero padding.
	timestampInputLayout = "2006-1-2 15:4:5"
)

// Normalize converts a flat text token into its typed form.
// Attempts run in order: timestamp, integer, float. Timestamp fields may omit zero
// padding, and numbers may group digits with underscores ("1_000"). A token matching
// none of them is returned unchanged as a raw value, including the empty string.
func Normalize(s string) models.Value {
	if t, err := time.Parse(timestampInputLayout, s); err == nil {
		return models.Date(t.Format(DateLayout))
	}
	if v, ok := parseNumber(s); ok {
		return v
	}
	return models.Raw(s)
}

// parseNumber returns an integer for integral numbers and a float otherwise.
func parseNumber(s string) (models.Value, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return models.Value{}, false
	}
	s, ok := stripDigitSeparators(s)
	if !ok {
		return models.Value{}, false
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Integer(i), true
	}
	// Try float
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Value{}, false
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return models.Integer(int64(f)), true
	}
	return models.Float(f), true
}

// stripDigitSeparators removes underscores placed between two digits.
// Any other underscore makes the token non-numeric.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
