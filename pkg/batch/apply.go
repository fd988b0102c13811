package batch

import (
	"context"
	"fmt"

	"github.com/sdejongh/mmv/internal/platform"
	"github.com/sdejongh/mmv/pkg/logging"
	"github.com/sdejongh/mmv/pkg/models"
	"github.com/sdejongh/mmv/pkg/output"
)

// checkCollisions validates every planned destination before anything moves.
// A destination fails when it already exists or when an earlier entry of the
// same batch claims it.
func (e *Executor) checkCollisions(ctx context.Context, report *models.BatchReport) error {
	claimed := make(map[string]string, len(report.Entries))

	for i := range report.Entries {
		entry := &report.Entries[i]
		if entry.Status != models.EntryPlanned {
			continue
		}

		dest := platform.NormalizePath(entry.Destination)
		if other, ok := claimed[dest]; ok {
			return &models.CollisionError{
				Source:      entry.Source,
				Destination: entry.Destination,
				Reason:      models.CollisionDuplicate,
				Other:       other,
			}
		}
		claimed[dest] = entry.Source

		if err := e.checkDestination(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}

// checkDestination fails with a CollisionError when the destination exists
func (e *Executor) checkDestination(ctx context.Context, entry *models.MoveEntry) error {
	exists, err := e.backend.Exists(ctx, entry.Destination)
	if err != nil {
		return err
	}
	if exists {
		return &models.CollisionError{
			Source:      entry.Source,
			Destination: entry.Destination,
			Reason:      models.CollisionExists,
		}
	}
	return nil
}

// ensureDir creates the parent directory of the target template. Failure is
// not fatal: the renames that need the directory will fail individually.
func (e *Executor) ensureDir(ctx context.Context, report *models.BatchReport) {
	if !e.operation.CreateDirs {
		return
	}

	dir := platform.TemplateDir(e.operation.TargetTemplate)

	info, statErr := e.backend.Stat(ctx, dir)
	if statErr == nil && !info.IsDir {
		e.dirError(ctx, dir, fmt.Errorf("%s exists and is not a directory", info.Path))
		return
	}

	if err := e.backend.MkdirAll(ctx, dir); err != nil {
		e.dirError(ctx, dir, err)
		return
	}

	if statErr != nil {
		report.Stats.DirsCreated++
		e.logger.Debug(ctx, "created destination directory", logging.Fields{"directory": dir})
		e.formatter.Progress(output.ProgressUpdate{Type: output.UpdateDirCreated, Destination: dir})
	}
}

func (e *Executor) dirError(ctx context.Context, dir string, err error) {
	e.logger.Warn(ctx, "failed to create destination directory", logging.Fields{
		"directory": dir,
		"error":     err.Error(),
	})
	e.formatter.Progress(output.ProgressUpdate{Type: output.UpdateDirError, Destination: dir, Error: err})
}

// apply renames every planned entry in discovery order. A failed rename is
// recorded and the batch continues. With checkEach set, each destination is
// checked right before its rename and a collision stops the batch, leaving
// earlier entries moved.
func (e *Executor) apply(ctx context.Context, report *models.BatchReport, checkEach bool) error {
	total := len(report.Entries)

	for i := range report.Entries {
		entry := &report.Entries[i]
		if entry.Status != models.EntryPlanned {
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if checkEach {
			if err := e.checkDestination(ctx, entry); err != nil {
				return err
			}
		}

		e.formatter.Progress(output.ProgressUpdate{
			Type: output.UpdateMoveStart, Source: entry.Source, Destination: entry.Destination,
			Current: i + 1, Total: total,
		})

		if err := e.backend.Rename(ctx, entry.Source, entry.Destination); err != nil {
			report.RecordError(entry, err)
			e.logger.Error(ctx, "rename failed", err, logging.Fields{
				"source":      entry.Source,
				"destination": entry.Destination,
			})
			e.formatter.Progress(output.ProgressUpdate{
				Type: output.UpdateMoveError, Source: entry.Source, Destination: entry.Destination,
				Current: i + 1, Total: total, Error: err,
			})
			continue
		}

		entry.Status = models.EntryMoved
		report.Stats.FilesMoved++
		e.logger.Info(ctx, "moved", logging.Fields{
			"source":      entry.Source,
			"destination": entry.Destination,
		})
		e.formatter.Progress(output.ProgressUpdate{
			Type: output.UpdateMoveComplete, Source: entry.Source, Destination: entry.Destination,
			Current: i + 1, Total: total,
		})
	}

	return nil
}
