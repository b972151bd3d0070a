package textab

import (
	"errors"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSourceNotFound = errors.New("source not found")
	ErrNoRows         = errors.New("no rows left after skip")
	ErrOutputMismatch = errors.New("output count does not match table count")
)

// indentUnit is one level of indentation in generated source.
const indentUnit = "    "

// Options configures one conversion. The zero value reads comma-separated
// input whose first row is a header and produces an indented, centered
// table environment.
type Options struct {
	// Delimiter separates fields in the source. It may be longer than one
	// character. Empty means comma. See [ParseDelimiter] for the recognized
	// shorthand names.
	Delimiter string

	// Skip is the number of leading rows discarded before any header or
	// data interpretation. Independent of NoHeader.
	Skip int

	// NoHeader marks sources whose first remaining row is data, not column
	// names. It suppresses the \midrule separator and the units row.
	NoHeader bool

	// Align is the column alignment specifier: one of l, c, r per column,
	// or a single character applied to every column. Invalid characters
	// degrade the whole specifier to centered; length mismatches are
	// reconciled, never rejected.
	Align string

	// Caption is placed above the table. Cleared in fragment mode.
	Caption string

	// Label makes the table referenceable. Cleared in fragment mode.
	Label string

	// Units is an optional per-column unit list rendered as a bracketed
	// second header row. The tokens "-", "/" and "0" mean "no unit" and
	// render as an empty column. Ignored when NoHeader is set.
	Units []string

	// NoIndent disables the four-space indentation of generated source.
	// The compiled result is unaffected.
	NoIndent bool

	// Fragment emits only the inner rows with no environment around them.
	// It forces NoIndent and clears Caption, Label and Preamble.
	Fragment bool

	// FragmentSkipHeader is the fragment shortcut for sources that still
	// carry a header row: it forces Skip to 1, sets NoHeader and enables
	// Fragment.
	FragmentSkipHeader bool

	// NoEscape passes cells through verbatim instead of escaping the
	// reserved characters # $ % & _ } {.
	NoEscape bool

	// Preamble wraps the composed tables in a minimal document so the
	// output compiles standalone. Cleared in fragment mode.
	Preamble bool

	// PadCells pads cells to a common display width per column so the &
	// separators line up in the generated source. Cosmetic only.
	PadCells bool
}

// normalize resolves the mode interactions once, before assembly: the
// fragment shortcut implies skipping the header row, and fragment output is
// always a bare, unindented, unlabeled row set.
func (o Options) normalize() Options {
	if o.FragmentSkipHeader {
		o.Skip = 1
		o.NoHeader = true
		o.Fragment = true
	}
	if o.Fragment {
		o.NoIndent = true
		o.Label = ""
		o.Caption = ""
		o.Preamble = false
	}
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Delimiter == "" {
		o.Delimiter = ","
	}
	if o.Align == "" {
		o.Align = "c"
	}
	return o
}

// indent returns one indentation unit under the current options.
func (o Options) indent() string {
	if o.NoIndent {
		return ""
	}
	return indentUnit
}

// ParseDelimiter maps shorthand delimiter names to their literal
// characters: "t", "tab" and `\t` mean tab; "s", "semi" and ";" mean
// semicolon; "c", "comma" and "," mean comma. Matching is case-insensitive.
// Any other string is used verbatim as the delimiter, which may be longer
// than one character.
func ParseDelimiter(s string) string {
	switch strings.ToLower(s) {
	case "t", "tab", `\t`:
		return "\t"
	case "s", "semi", ";":
		return ";"
	case "c", "comma", ",":
		return ","
	default:
		return s
	}
}
