package textab

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// readRows parses delimited text into rows of cells. Single-rune delimiters
// go through encoding/csv so quoting is honored; longer delimiters split
// each line literally. Blank lines are skipped in both paths.
func readRows(r io.Reader, delim string) ([][]string, error) {
	if utf8.RuneCountInString(delim) == 1 {
		cr := csv.NewReader(r)
		cr.Comma, _ = utf8.DecodeRuneInString(delim)
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		return cr.ReadAll()
	}
	var rows [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, delim))
	}
	return rows, sc.Err()
}

// readXLSXRows reads the first sheet of a workbook. The delimiter does not
// apply to spreadsheet sources.
func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}
