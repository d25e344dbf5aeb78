package rename

import "github.com/schaermu/editdir/internal/listing"

// Kind is the action taken for one listed entry.
type Kind int

const (
	Keep Kind = iota
	Rename
	Delete
)

func (k Kind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Rename:
		return "rename"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation is the verdict for one original entry
type Operation struct {
	Kind    Kind
	Entry   listing.IndexedEntry
	NewPath string // destination, set for Rename only
}

// Plan holds one operation per listed entry, in listing order.
type Plan struct {
	Operations []Operation
}

// Counts returns the number of renames and deletes in the plan.
func (p *Plan) Counts() (renames, deletes int) {
	for _, op := range p.Operations {
		switch op.Kind {
		case Rename:
			renames++
		case Delete:
			deletes++
		}
	}
	return renames, deletes
}

// Changes returns only the operations that touch the filesystem.
func (p *Plan) Changes() []Operation {
	var ops []Operation
	for _, op := range p.Operations {
		if op.Kind != Keep {
			ops = append(ops, op)
		}
	}
	return ops
}
