// Package models defines the plain data structures shared by the splitter packages.
package models

import "strconv"

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// KindRaw is an opaque value written as-is (strings that are neither dates nor numbers).
	KindRaw ValueKind = iota
	// KindDate is a timestamp rendered as DD/MM/YYYY text.
	KindDate
	// KindInteger is an integral number.
	KindInteger
	// KindFloat is a non-integral number.
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "raw"
	}
}

// Value is a normalized cell value ready to be written into an output grid.
type Value struct {
	Kind  ValueKind
	Text  string  // KindRaw and KindDate
	Int   int64   // KindInteger
	Float float64 // KindFloat
}

// Raw returns a KindRaw value.
func Raw(s string) Value { return Value{Kind: KindRaw, Text: s} }

// Date returns a KindDate value holding already formatted text.
func Date(s string) Value { return Value{Kind: KindDate, Text: s} }

// Integer returns a KindInteger value.
func Integer(i int64) Value { return Value{Kind: KindInteger, Int: i} }

// Float returns a KindFloat value.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Any returns the Go value to hand to a spreadsheet writer.
func (v Value) Any() interface{} {
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return v.Text
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Text
	}
}
