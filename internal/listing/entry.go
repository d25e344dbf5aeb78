// Package listing turns directory entries into the numbered text listing
// handed to the editor, and parses the edited listing back into rows.
//
// Paths are carried as Go strings but treated as opaque byte sequences: they
// are never validated or normalised, so names that are not valid UTF-8
// survive the round trip unchanged.
package listing

// Entry is a filesystem object found under one of the requested roots.
type Entry struct {
	Path  string
	IsDir bool
}

// Kind returns "directory" or "file".
func (e Entry) Kind() string {
	if e.IsDir {
		return "directory"
	}
	return "file"
}

// IndexedEntry is an Entry with its 1-based position in the listing.
type IndexedEntry struct {
	Index int
	Entry
}

// Row is one line recovered from the edited listing.
type Row struct {
	Index int
	Path  string
}
