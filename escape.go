package textab

import "strings"

// latexEscaper backslash-prefixes the seven reserved markup characters.
// Each occurrence is replaced once, left to right, and inserted backslashes
// are never re-scanned, so applying it twice re-escapes its own output.
// That matches the original tool and is deliberate.
var latexEscaper = strings.NewReplacer(
	"#", `\#`,
	"$", `\$`,
	"%", `\%`,
	"&", `\&`,
	"_", `\_`,
	"}", `\}`,
	"{", `\{`,
)

// escaper rewrites one cell.
type escaper func(string) string

// newEscaper returns the reserved-character escaper, or the identity
// function when escaping is disabled.
func newEscaper(disabled bool) escaper {
	if disabled {
		return func(s string) string { return s }
	}
	return latexEscaper.Replace
}

// escapeCells applies esc to every cell. The input slice is not modified.
func escapeCells(cells []string, esc escaper) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = esc(c)
	}
	return out
}
