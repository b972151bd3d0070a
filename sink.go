package textab

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the document to path. The default policy appends, so
// repeated runs accumulate tables in one file; replace truncates first.
func Save(doc, path string, replace bool) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if replace {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Destinations names the per-table output files for [SaveSeparate]. Paths
// wins when set and is paired positionally with the tables. Dir places a
// derived <basename>.tex for each source in one directory. With neither,
// the derived name is placed next to its source.
type Destinations struct {
	Paths []string
	Dir   string
}

// SaveSeparate writes each table to its own file. An explicit path list of
// the wrong length is paired best effort: the shorter side wins, the rest
// is dropped, and a warning records the mismatch. A failed write is a
// warning and does not stop the sibling writes.
func SaveSeparate(tables []SourceTable, dest Destinations, replace bool) []Warning {
	var warnings []Warning

	paths := dest.Paths
	if len(paths) == 0 {
		paths = make([]string, len(tables))
		for i, t := range tables {
			paths[i] = derivedName(t.Source, dest.Dir)
		}
	} else if len(paths) != len(tables) {
		warnings = append(warnings, Warning{
			Err: fmt.Errorf("%w: %d tables, %d outputs", ErrOutputMismatch, len(tables), len(paths)),
		})
	}

	for i := 0; i < len(tables) && i < len(paths); i++ {
		if err := Save(tables[i].Content, paths[i], replace); err != nil {
			warnings = append(warnings, Warning{Path: paths[i], Err: err})
		}
	}
	return warnings
}

// derivedName swaps the source extension for .tex, optionally rehoming the
// file into dir.
func derivedName(source, dir string) string {
	name := strings.TrimSuffix(source, filepath.Ext(source)) + ".tex"
	if dir != "" {
		name = filepath.Join(dir, filepath.Base(name))
	}
	return name
}
