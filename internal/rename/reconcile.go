package rename

import (
	"errors"
	"fmt"

	"github.com/schaermu/editdir/internal/listing"
)

// ErrUnknownIndex is returned when an edited row refers to an index that was
// not in the original listing.
var ErrUnknownIndex = errors.New("unknown index")

// BuildPlan compares the original listing with the edited rows and returns
// one operation per entry. Entries without a row are deleted; entries whose
// row carries a different path are renamed. When an index appears in more
// than one row, the last row wins.
//
// Every row is validated before any operation is produced, so an unknown
// index fails the whole plan.
func BuildPlan(entries []listing.IndexedEntry, rows []listing.Row) (*Plan, error) {
	known := make(map[int]bool, len(entries))
	for _, entry := range entries {
		known[entry.Index] = true
	}

	edited := make(map[int]string, len(rows))
	for i, row := range rows {
		if !known[row.Index] {
			return nil, fmt.Errorf("%w %d at row %d", ErrUnknownIndex, row.Index, i)
		}
		edited[row.Index] = row.Path
	}

	plan := &Plan{Operations: make([]Operation, 0, len(entries))}
	for _, entry := range entries {
		newPath, ok := edited[entry.Index]
		switch {
		case !ok:
			plan.Operations = append(plan.Operations, Operation{Kind: Delete, Entry: entry})
		case unchanged(entry.Path, newPath):
			plan.Operations = append(plan.Operations, Operation{Kind: Keep, Entry: entry})
		default:
			plan.Operations = append(plan.Operations, Operation{Kind: Rename, Entry: entry, NewPath: newPath})
		}
	}
	return plan, nil
}

// DuplicateIndices returns the indices that occur in more than one row.
func DuplicateIndices(rows []listing.Row) []int {
	seen := make(map[int]int, len(rows))
	var dups []int
	for _, row := range rows {
		seen[row.Index]++
		if seen[row.Index] == 2 {
			dups = append(dups, row.Index)
		}
	}
	return dups
}

// unchanged compares paths byte for byte. A single trailing "/" on the
// edited path is ignored since the listing shows directories that way.
func unchanged(oldPath, newPath string) bool {
	return newPath == oldPath || newPath == oldPath+"/"
}
