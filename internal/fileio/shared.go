package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("unsupported file type")

var tabular = map[string]bool{".csv": true, ".xls": true, ".xlsx": true}

// IsTabular reports whether ReadAnyMaps can read the file by its extension.
func IsTabular(filename string) bool {
	return tabular[strings.ToLower(filepath.Ext(filename))]
}

// ReadAnyMaps picks a reader by extension and returns the rows as map[header]value.
// headerRow is 1-based.
func ReadAnyMaps(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	if headerRow <= 0 {
		headerRow = 1
	}
	var (
		rows []map[string]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readXLSX(r, headerRow)
	case ".xls":
		rows, err = readXLS(r, headerRow)
	case ".csv":
		rows, err = readCSV(r, headerRow)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "%s", filename)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}
	return rows, nil
}

// pickHeader takes the header row and fills blanks with "Column N".
func pickHeader(rows [][]string, headerRow int) []string {
	if len(rows) == 0 {
		return nil
	}
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = normalizeCell(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps turns rows below the header into maps, skipping blank rows.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = normalizeCell(rec[c])
			}
			if v != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}

// normalizeCell trims whitespace, including NBSP and a leading BOM.
func normalizeCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', '\n', '\u00A0', '\u202F':
			return true
		}
		return false
	})
}
