package rename

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// fileSystem is the subset of filesystem calls the applier makes.
type fileSystem interface {
	Lstat(name string) (os.FileInfo, error)
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}

// osFS implements fileSystem with the os package.
type osFS struct{}

func (osFS) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }
func (osFS) Remove(name string) error { return os.Remove(name) }
func (osFS) RemoveAll(path string) error { return os.RemoveAll(path) }
func (osFS) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

// Applier executes a plan against the filesystem.
type Applier struct {
	fs      fileSystem
	out     io.Writer
	verbose bool
	logger  *slog.Logger
}

// NewApplier creates an applier that works on the real filesystem. When
// verbose is set, every rename and delete is confirmed with a line on out.
func NewApplier(out io.Writer, verbose bool, logger *slog.Logger) *Applier {
	return &Applier{
		fs:      osFS{},
		out:     out,
		verbose: verbose,
		logger:  logger,
	}
}

// Apply runs the operations one at a time, in plan order. It stops at the
// first failure; operations that already succeeded are left in place.
func (a *Applier) Apply(plan *Plan) error {
	for _, op := range plan.Operations {
		switch op.Kind {
		case Keep:
			continue
		case Delete:
			if err := a.remove(op); err != nil {
				return err
			}
		case Rename:
			if err := a.move(op); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown operation %v for %q", op.Kind, op.Entry.Path)
		}
	}
	return nil
}

// remove deletes a file, or a directory with everything below it.
func (a *Applier) remove(op Operation) error {
	entry := op.Entry
	a.logger.Debug("removing", "kind", entry.Kind(), "path", entry.Path)

	var err error
	if entry.IsDir {
		// RemoveAll succeeds on a missing path; a vanished directory is
		// still reported as an error.
		if _, err = a.fs.Lstat(entry.Path); err == nil {
			err = a.fs.RemoveAll(entry.Path)
		}
	} else {
		err = a.fs.Remove(entry.Path)
	}
	if err != nil {
		return fmt.Errorf("error deleting %s %q: %w", entry.Kind(), entry.Path, err)
	}

	if a.verbose {
		fmt.Fprintf(a.out, "Removed %s %q\n", entry.Kind(), entry.Path)
	}
	return nil
}

// move renames an entry in a single call.
func (a *Applier) move(op Operation) error {
	entry := op.Entry
	a.logger.Debug("moving", "kind", entry.Kind(), "from", entry.Path, "to", op.NewPath)

	if err := a.fs.Rename(entry.Path, op.NewPath); err != nil {
		return fmt.Errorf("error moving %s %q to %q: %w", entry.Kind(), entry.Path, op.NewPath, err)
	}

	if a.verbose {
		fmt.Fprintf(a.out, "Moved %s %q to %q\n", entry.Kind(), entry.Path, op.NewPath)
	}
	return nil
}

// Describe writes what Apply would do, one line per change, without
// touching the filesystem.
func Describe(w io.Writer, plan *Plan) {
	for _, op := range plan.Changes() {
		switch op.Kind {
		case Delete:
			fmt.Fprintf(w, "Would remove %s %q\n", op.Entry.Kind(), op.Entry.Path)
		case Rename:
			fmt.Fprintf(w, "Would move %s %q to %q\n", op.Entry.Kind(), op.Entry.Path, op.NewPath)
		}
	}
}
