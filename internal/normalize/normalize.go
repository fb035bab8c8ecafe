// Package normalize holds the two stateless cell transforms applied before
// encoding. Both are total: Numeric and Missing cells pass through unchanged,
// and text input never errors.
package normalize

import (
	"strings"

	"surveyprep/domain/table"
)

// JoinMultiLabelTokens rewrites a semicolon-delimited multi-select answer
// into a single-space-delimited token string, with each original category
// collapsed into one underscore-joined token:
//
//	"Stock options; Annual bonus" -> "Stock_options Annual_bonus"
//
// Cells without a semicolon are left alone, which keeps the transform
// idempotent: output never contains a semicolon, so a second pass is the
// identity.
func JoinMultiLabelTokens(v table.Value) table.Value {
	if !v.IsText() {
		return v
	}
	s := v.AsString()
	if !strings.Contains(s, ";") {
		return v
	}
	s = strings.ReplaceAll(s, "; ", ";")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ";", " ")
	return table.NewTextValue(s)
}

// StripNonASCII removes every rune outside the printable ASCII range,
// preserving the order of what remains. Survey free-text answers for
// currency and ethnicity carry stray codepoints that break downstream
// vocabularies.
func StripNonASCII(v table.Value) table.Value {
	if !v.IsText() {
		return v
	}
	s := v.AsString()
	var b strings.Builder
	changed := false
	for _, r := range s {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		} else {
			changed = true
		}
	}
	if !changed {
		return v
	}
	return table.NewTextValue(b.String())
}
