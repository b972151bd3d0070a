package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/textab"
)

// flags mirrors the Options fields plus the output selection. A copy is
// taken per run so config-file defaults never leak between invocations.
type flags struct {
	sep                string
	align              string
	caption            string
	label              string
	units              []string
	skip               int
	noHeader           bool
	noIndent           bool
	noEscape           bool
	fragment           bool
	fragmentSkipHeader bool
	preamble           bool
	pad                bool
	outfile            string
	outputs            []string
	separate           bool
	replace            bool
	config             string
}

var cliFlags flags

var rootCmd = &cobra.Command{
	Use:   "textab [flags] file...",
	Short: "Create LaTeX tables from delimited text files",
	Long: `textab converts delimited text files (and .xlsx workbooks) into LaTeX
booktabs tables. Without -o the result is printed; with -o it is appended
to the chosen file. Missing or empty sources are skipped with a warning and
never abort the run.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	fl := rootCmd.Flags()
	fl.StringVarP(&cliFlags.sep, "sep", "s", ",", `column separator; "t"/"tab", "s"/"semi" and "c"/"comma" are shorthands, anything else is used literally`)
	fl.StringVarP(&cliFlags.align, "align", "a", "c", "column alignment: l, c and r, one character per column or one for all")
	fl.StringVarP(&cliFlags.caption, "caption", "c", "", "caption printed above the table")
	fl.StringVarP(&cliFlags.label, "label", "l", "", "label for referencing the table")
	fl.StringSliceVarP(&cliFlags.units, "units", "u", nil, `per-column units; "-", "/" or "0" mean no unit`)
	fl.IntVarP(&cliFlags.skip, "skip", "k", 0, "number of leading rows to skip")
	fl.BoolVarP(&cliFlags.noHeader, "no-header", "n", false, "treat the first row as data, not column names")
	fl.BoolVarP(&cliFlags.noIndent, "no-indent", "i", false, "do not indent the generated source")
	fl.BoolVarP(&cliFlags.noEscape, "no-escape", "e", false, "do not escape reserved characters in cells")
	fl.BoolVarP(&cliFlags.fragment, "fragment", "f", false, "emit only the table rows, without an environment")
	fl.BoolVar(&cliFlags.fragmentSkipHeader, "fragment-skip-header", false, "fragment mode, skipping the source's header row")
	fl.BoolVarP(&cliFlags.preamble, "preamble", "p", false, "wrap the output in a minimal compilable document")
	fl.BoolVar(&cliFlags.pad, "pad", false, "pad cells so the & separators line up in the source")
	fl.StringVarP(&cliFlags.outfile, "outfile", "o", "", "append the output to this file instead of printing")
	fl.StringSliceVarP(&cliFlags.outputs, "outputs", "O", nil, "write one file per source: an explicit list, or a single directory")
	fl.BoolVarP(&cliFlags.separate, "separate", "S", false, "write one <basename>.tex per source")
	fl.BoolVarP(&cliFlags.replace, "replace", "r", false, "overwrite output files instead of appending")
	fl.StringVar(&cliFlags.config, "config", "", "YAML file with default option values")
}

func run(cmd *cobra.Command, args []string) error {
	f := cliFlags
	if f.config != "" {
		cfg, err := loadConfig(f.config)
		if err != nil {
			return err
		}
		cfg.apply(cmd.Flags(), &f)
	}

	opts := textab.Options{
		Delimiter:          textab.ParseDelimiter(f.sep),
		Skip:               f.skip,
		NoHeader:           f.noHeader,
		Align:              f.align,
		Caption:            f.caption,
		Label:              f.label,
		Units:              f.units,
		NoIndent:           f.noIndent,
		Fragment:           f.fragment,
		FragmentSkipHeader: f.fragmentSkipHeader,
		NoEscape:           f.noEscape,
		Preamble:           f.preamble,
		PadCells:           f.pad,
	}

	res := textab.Compose(args, opts)
	warn(res.Warnings...)
	if len(res.Tables) == 0 {
		// Nothing usable: print nothing, write nothing.
		return nil
	}

	if f.separate || len(f.outputs) > 0 {
		dest := textab.Destinations{Paths: f.outputs}
		if len(f.outputs) == 1 {
			if fi, err := os.Stat(f.outputs[0]); err == nil && fi.IsDir() {
				dest = textab.Destinations{Dir: f.outputs[0]}
			}
		}
		warn(textab.SaveSeparate(res.Tables, dest, f.replace)...)
		return nil
	}

	if f.outfile != "" {
		if err := textab.Save(res.Document, f.outfile, f.replace); err != nil {
			warn(textab.Warning{Path: f.outfile, Err: err})
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.outfile)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Document)
	return nil
}

func warn(ws ...textab.Warning) {
	for _, w := range ws {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}
