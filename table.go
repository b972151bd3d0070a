package textab

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Assemble reads one tabular source and returns its table environment, or
// only the inner rows in fragment mode. It returns ErrNoRows when skipping
// leaves nothing to format.
func Assemble(r io.Reader, opts Options) (string, error) {
	opts = opts.normalize()
	rows, err := readRows(r, opts.Delimiter)
	if err != nil {
		return "", err
	}
	return assemble(rows, opts)
}

// AssembleFile opens path and assembles its table. Files ending in .xlsx
// are read as workbooks (first sheet); everything else is delimited text.
// A missing file is reported as ErrSourceNotFound.
func AssembleFile(path string, opts Options) (string, error) {
	opts = opts.normalize()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err := readXLSXRows(path)
		if err != nil {
			return "", err
		}
		return assemble(rows, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", err
	}
	defer f.Close()
	return Assemble(f, opts)
}

// assemble builds one table from already-parsed rows. opts must be
// normalized.
func assemble(rows [][]string, opts Options) (string, error) {
	if opts.Skip >= len(rows) {
		return "", ErrNoRows
	}
	rows = rows[opts.Skip:]

	// The alignment width follows the last row read, not the widest or the
	// header row. A short trailing row therefore narrows the alignment
	// string. Kept for output compatibility with the original tool.
	align := normalizeAlignment(opts.Align, len(rows[len(rows)-1]))

	esc := newEscaper(opts.NoEscape)
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = escapeCells(row, esc)
	}
	if opts.PadCells {
		padColumns(cells, align)
	}

	indent := opts.indent()
	lines := make([]string, len(cells))
	for i, row := range cells {
		lines[i] = formatRow(row, indent)
	}

	if !opts.NoHeader {
		lines = slices.Insert(lines, 1, indent+indent+`\midrule`)
		if len(opts.Units) > 0 {
			// \relax keeps the following bracketed unit row from being
			// parsed as an optional argument of \\.
			lines[0] += `\relax`
			lines = slices.Insert(lines, 1, indent+indent+formatUnits(opts.Units, esc)+` \\`)
		}
	}

	content := strings.Join(lines, "\n")
	if opts.Fragment {
		return content, nil
	}
	return tableHeader(opts.Label, opts.Caption, align, indent) + "\n" +
		content + "\n" +
		tableFooter(indent), nil
}

// tableHeader renders the environment opener: the table and tabular begins,
// centering, and the optional label and caption lines.
func tableHeader(label, caption, align, indent string) string {
	var b strings.Builder
	b.WriteString("\\begin{table}[htb]\n")
	b.WriteString(indent + "\\centering")
	if label != "" {
		b.WriteString("\n" + indent + "\\label{" + label + "}")
	}
	if caption != "" {
		b.WriteString("\n" + indent + "\\caption{" + caption + "}")
	}
	b.WriteString("\n" + indent + "\\begin{tabular}{@{}" + align + "@{}}")
	b.WriteString("\n" + indent + indent + "\\toprule")
	return b.String()
}

// tableFooter renders the environment closers.
func tableFooter(indent string) string {
	return indent + indent + "\\bottomrule\n" +
		indent + "\\end{tabular}\n" +
		"\\end{table}"
}

// padColumns pads every cell to its column's display width, in place, so
// the & separators and line terminators line up in the generated source.
// Columns beyond the alignment string pad left.
func padColumns(rows [][]string, align string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = padCell(cell, widths[i], alignAt(align, i))
		}
	}
}

func alignAt(align string, i int) byte {
	if i < len(align) {
		return align[i]
	}
	return 'l'
}

func padCell(s string, width int, align byte) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case 'r':
		return strings.Repeat(" ", pad) + s
	case 'c':
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
