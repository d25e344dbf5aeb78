// Package rename reconciles an edited listing with the directory contents it
// was built from and applies the resulting renames and deletes.
package rename

import (
	"io"
	"log/slog"

	"github.com/schaermu/editdir/internal/config"
	"github.com/schaermu/editdir/internal/editor"
	"github.com/schaermu/editdir/internal/listing"
)

// Engine runs one edit session from listing to applied changes.
type Engine struct {
	cfg     *config.Config
	editor  editor.Editor
	applier *Applier
	out     io.Writer
	logger  *slog.Logger
	dryRun  bool
}

// NewEngine creates a new engine. Confirmations and dry-run output go to out.
func NewEngine(cfg *config.Config, ed editor.Editor, out io.Writer, logger *slog.Logger, dryRun bool) *Engine {
	return &Engine{
		cfg:     cfg,
		editor:  ed,
		applier: NewApplier(out, cfg.Verbose, logger),
		out:     out,
		logger:  logger,
		dryRun:  dryRun,
	}
}

// Run lists roots, lets the user edit the listing and applies the result.
// Nothing is changed on disk unless the whole edited listing parses and
// reconciles.
func (e *Engine) Run(roots []string) error {
	entries, err := listing.Collect(roots)
	if err != nil {
		return err
	}
	e.logger.Debug("collected entries", "roots", roots, "count", len(entries))

	edited, err := editor.EditBytes(e.editor, e.cfg.TempDir, listing.Encode(entries))
	if err != nil {
		return err
	}

	rows, err := listing.Decode(edited)
	if err != nil {
		return err
	}
	if dups := DuplicateIndices(rows); len(dups) > 0 {
		e.logger.Debug("duplicate indices in edited listing, last row wins", "indices", dups)
	}

	plan, err := BuildPlan(entries, rows)
	if err != nil {
		return err
	}

	renames, deletes := plan.Counts()
	e.logger.Debug("plan",
		"rename", renames,
		"delete", deletes,
		"keep", len(plan.Operations)-renames-deletes,
		"dry_run", e.dryRun)

	if e.dryRun {
		Describe(e.out, plan)
		return nil
	}

	return e.applier.Apply(plan)
}
