package textab

import "strings"

// unitless holds the sentinel tokens meaning "this column has no unit".
// Explicit set membership: "m/s" carries a slash but is a real unit.
var unitless = map[string]bool{"-": true, "/": true, "0": true}

// formatRow renders one source row as a tabular line: two indent units,
// cells joined with " & ", and the line terminator.
func formatRow(cells []string, indent string) string {
	return indent + indent + strings.Join(cells, " & ") + ` \\`
}

// formatUnits renders the cell content of the secondary header row holding
// column units. Sentinel tokens collapse to an empty column; everything
// else is bracketed.
func formatUnits(units []string, esc escaper) string {
	formatted := make([]string, len(units))
	for i, unit := range escapeCells(units, esc) {
		if unitless[unit] {
			continue // stays empty
		}
		formatted[i] = "[" + unit + "]"
	}
	return strings.Join(formatted, " & ")
}
