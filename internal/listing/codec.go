package listing

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by Decode. Both are wrapped with the offending row.
var (
	ErrMissingIndex = errors.New("couldn't find index")
	ErrInvalidIndex = errors.New("invalid index")
)

// indexWidth is the minimum width of the right-justified index column.
const indexWidth = 5

// Encode renders entries as the text handed to the editor: one row per
// entry, "%5d <path>", with a trailing "/" on directories. Rows are joined
// by "\n" without a final newline. Path bytes are copied verbatim.
func Encode(entries []IndexedEntry) []byte {
	var buf bytes.Buffer
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%*d ", indexWidth, entry.Index)
		buf.WriteString(entry.Path)
		if entry.IsDir {
			buf.WriteByte('/')
		}
	}
	return buf.Bytes()
}

// Decode parses an edited listing. Blank lines are skipped, and row numbers
// in errors count only the lines that were not skipped, starting at 0.
func Decode(data []byte) ([]Row, error) {
	data = trimSpaces(data)

	var rows []Row
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = trimSpaces(line)
		if len(line) == 0 {
			continue
		}
		pos := len(rows)

		indexField, pathField, found := bytes.Cut(line, []byte{' '})
		if !found {
			return nil, fmt.Errorf("%w at row %d", ErrMissingIndex, pos)
		}

		index, err := strconv.ParseUint(string(indexField), 10, strconv.IntSize-1)
		if err != nil {
			return nil, fmt.Errorf("%w %q at row %d", ErrInvalidIndex, indexField, pos)
		}

		rows = append(rows, Row{
			Index: int(index),
			Path:  string(trimSpaces(pathField)),
		})
	}
	return rows, nil
}

// trimSpaces strips leading and trailing ' ' only. Tabs and other
// whitespace belong to the path.
func trimSpaces(b []byte) []byte {
	return bytes.Trim(b, " ")
}
