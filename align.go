package textab

import "strings"

// normalizeAlignment reconciles an alignment specifier with a column count.
// Any character outside l, c and r degrades the whole specifier to
// centered. A single character applies to every column. Length mismatches
// are padded with c or truncated, never rejected.
func normalizeAlignment(align string, columns int) string {
	for _, r := range align {
		if r != 'l' && r != 'c' && r != 'r' {
			align = "c"
			break
		}
	}
	if columns == 0 {
		columns = 1
	}
	switch n := len(align); {
	case n == 1:
		return strings.Repeat(align, columns)
	case n == columns:
		return align
	case n > columns:
		return align[:columns]
	default:
		return align + strings.Repeat("c", columns-n)
	}
}
