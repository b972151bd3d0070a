// Package textab converts delimited tabular text into LaTeX table source.
//
// The central entry points are [Compose], which turns a list of source
// files into one combined document, and [Assemble]/[AssembleFile], which
// build a single booktabs table environment from one source. [Options]
// carries the full per-conversion configuration; its zero value reads
// comma-separated input whose first row is a header and renders an
// indented, centered table.
//
// # Sources
//
// A source is a sequence of lines whose fields are separated by a
// configurable delimiter. Use [ParseDelimiter] to map the shorthand names
// "tab", "semi" and "comma" (and their one-letter forms) to literal
// characters; any other string, including multi-character ones, is used
// verbatim. Files ending in .xlsx are read as workbooks instead, taking the
// rows of the first sheet.
//
// # Tables
//
// Each table is wrapped in a table/tabular environment with \toprule and
// \bottomrule rules. When the source has a header row, a \midrule follows
// it, and an optional unit list renders as a bracketed second header row:
//
//	\begin{table}[htb]
//	    \centering
//	    \begin{tabular}{@{}cc@{}}
//	        \toprule
//	        Speed & Time \\
//	        \midrule
//	        1 & 2 \\
//	        \bottomrule
//	    \end{tabular}
//	\end{table}
//
// Reserved markup characters in cells are backslash-escaped unless
// Options.NoEscape is set.
//
// # Fragment mode
//
// Options.Fragment emits only the inner rows, for \input into an existing
// document. Fragment output is always bare: indentation, caption, label and
// preamble are all forced off. Options.FragmentSkipHeader additionally
// skips a leading header row in the source.
//
// # Composition
//
// [Compose] never aborts on a bad source: a missing file or a source left
// empty after skipping becomes a [Warning] on the [Result] and the
// remaining sources keep their input order. An empty Result.Document means
// no source produced a table and nothing should be written.
//
// # Output
//
// [Save] writes the composed document to one file, appending by default.
// [SaveSeparate] writes one file per table, named by an explicit list, a
// target directory, or a derived <basename>.tex next to each source.
// Destination failures are warnings, never aborts.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrSourceNotFound] — the source file does not exist
//   - [ErrNoRows] — skipping left no rows to format
//   - [ErrOutputMismatch] — explicit output list does not pair up with the tables
package textab
