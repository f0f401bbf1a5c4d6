package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtInDateFormats lists the built-in number format ids that render dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// IsDateStyle reports whether a cell style formats numbers as dates or times.
func IsDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		return IsDateFormat(*style.CustomNumFmt)
	}
	return builtInDateFormats[style.NumFmt]
}

// IsDateFormat reports whether a custom number format code contains date or time tokens.
// Quoted literals, escaped characters and bracketed locale/colour sections are ignored;
// elapsed-time sections such as [h] count as time tokens.
func IsDateFormat(code string) bool {
	// Only the first section applies to positive numbers.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	var (
		inQuote   bool
		inBracket bool
		bracket   strings.Builder
	)
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
				if isElapsedToken(bracket.String()) {
					return true
				}
				bracket.Reset()
				continue
			}
			bracket.WriteByte(c)
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++ // skip the escaped or padding character
		default:
			switch c {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}

func isElapsedToken(s string) bool {
	if s == "" {
		return false
	}
	s = strings.ToLower(s)
	for _, r := range s {
		if r != 'h' && r != 'm' && r != 's' {
			return false
		}
	}
	return true
}
