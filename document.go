package textab

import "strings"

// preamble makes the composed output a standalone, compilable document.
const preamble = `\documentclass[11pt, a4paper]{article}
\usepackage{booktabs}
\begin{document}`

// relabelWarning is prepended when one label would be stamped on several
// tables. Labels are never auto-suffixed.
const relabelWarning = "% don't forget to manually re-label the tables"

// Warning records a non-fatal, per-source or per-destination failure.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Err.Error()
	}
	return w.Path + ": " + w.Err.Error()
}

// SourceTable pairs a source path with its assembled table.
type SourceTable struct {
	Source  string
	Content string
}

// Result is the structured outcome of composing several sources. Failures
// never abort a run; they accumulate in Warnings while the remaining
// sources are processed in order.
type Result struct {
	// Document is the combined output: the optional re-label warning, the
	// optional preamble, the tables, and the optional trailer, separated by
	// blank lines. Empty when no source produced a table, in which case
	// nothing should be printed or written.
	Document string

	// Tables holds the per-source tables that assembled successfully, in
	// input order, for per-file output.
	Tables []SourceTable

	// Warnings records the sources that were skipped and why.
	Warnings []Warning
}

// Compose assembles every source and joins the results into one document.
// Sources that cannot be opened or yield no rows are skipped with a
// warning; the rest keep their input order.
func Compose(paths []string, opts Options) Result {
	opts = opts.normalize()

	var res Result
	for _, path := range paths {
		table, err := AssembleFile(path, opts)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Path: path, Err: err})
			continue
		}
		res.Tables = append(res.Tables, SourceTable{Source: path, Content: table})
	}
	if len(res.Tables) == 0 {
		return res
	}

	parts := make([]string, 0, len(res.Tables)+3)
	if opts.Label != "" && len(paths) > 1 {
		parts = append(parts, relabelWarning)
	}
	if opts.Preamble {
		parts = append(parts, preamble)
	}
	for _, t := range res.Tables {
		parts = append(parts, t.Content)
	}
	if opts.Preamble {
		parts = append(parts, "\\end{document}\n")
	}
	res.Document = strings.Join(parts, "\n\n")
	return res
}
