package table

import (
	"strconv"
	"strings"
)

// ValueKind defines the storage type for cell values
type ValueKind string

const (
	KindNumeric ValueKind = "numeric"
	KindText    ValueKind = "text"
	KindMissing ValueKind = "missing"
)

// Value is a tagged cell value. Cleaning rules pattern-match on the kind
// instead of inspecting runtime types: Numeric and Missing cells pass through
// every string transform unchanged.
//
// Raw holds the original lexeme for Numeric and Text cells so that untouched
// cells render back to the output CSV byte-for-byte.
type Value struct {
	Kind ValueKind `json:"kind"`
	Num  float64   `json:"num,omitempty"`
	Raw  string    `json:"raw,omitempty"`
}

// Markers treated as missing in raw survey exports.
var missingMarkers = map[string]bool{
	"":    true,
	"NA":  true,
	"NaN": true,
}

// NewTextValue creates a text value
func NewTextValue(s string) Value {
	return Value{Kind: KindText, Raw: s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Kind: KindNumeric, Num: n, Raw: strconv.FormatFloat(n, 'f', -1, 64)}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Kind: KindMissing}
}

// Coerce converts one raw cell into a typed Value. Missing markers win over
// everything, then numeric parsing, then text. Coercion happens exactly once,
// at load time.
func Coerce(raw string) Value {
	if missingMarkers[strings.TrimSpace(raw)] {
		return NewMissingValue()
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Kind: KindNumeric, Num: n, Raw: raw}
	}
	return NewTextValue(raw)
}

// IsNumeric returns true for numeric cells
func (v Value) IsNumeric() bool { return v.Kind == KindNumeric }

// IsText returns true for text cells
func (v Value) IsText() bool { return v.Kind == KindText }

// IsMissing returns true for missing cells
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// AsFloat64 returns the numeric value, or 0 for non-numeric cells
func (v Value) AsFloat64() float64 {
	if v.Kind == KindNumeric {
		return v.Num
	}
	return 0
}

// AsString returns the text lexeme, or empty string for missing cells
func (v Value) AsString() string {
	if v.Kind == KindMissing {
		return ""
	}
	return v.Raw
}

// Render returns the cell as it is written to output CSV. Missing cells
// render empty, everything else keeps its lexeme.
func (v Value) Render() string {
	return v.AsString()
}
