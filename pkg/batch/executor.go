// Package batch plans and applies a batch move: every path matching the
// source pattern is renamed to the destination synthesized from the target
// template.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdejongh/mmv/internal/platform"
	"github.com/sdejongh/mmv/pkg/discovery"
	"github.com/sdejongh/mmv/pkg/logging"
	"github.com/sdejongh/mmv/pkg/models"
	"github.com/sdejongh/mmv/pkg/output"
	"github.com/sdejongh/mmv/pkg/pattern"
	"github.com/sdejongh/mmv/pkg/storage"
)

// Executor runs one batch operation:
//
//	Discover -> Plan -> Validate -> EnsureDir -> Apply -> Report
//
// Every destination is computed before the filesystem is touched. Nothing is
// retried and nothing is rolled back.
type Executor struct {
	backend   storage.Backend
	formatter output.Formatter
	logger    logging.Logger
	operation *models.BatchOperation
	writer    io.Writer
}

// NewExecutor creates a new batch executor. A nil logger disables logging.
func NewExecutor(
	backend storage.Backend,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.BatchOperation,
) *Executor {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Executor{
		backend:   backend,
		formatter: formatter,
		logger:    logger.WithFields(logging.Fields{"operation_id": operation.ID}),
		operation: operation,
		writer:    os.Stdout,
	}
}

// SetWriter sets where the formatter writes (stdout by default)
func (e *Executor) SetWriter(w io.Writer) {
	e.writer = w
}

// Run executes the batch. The report is returned even when err is non-nil so
// that moves applied before a fatal condition can still be shown.
//
// Fatal conditions are *models.NoMatchError (nothing matched, nothing touched)
// and *models.CollisionError (a destination exists and force is off).
// Individual rename failures are recorded in the report and do not make Run
// return an error.
func (e *Executor) Run(ctx context.Context) (*models.BatchReport, error) {
	op := e.operation
	if err := op.Validate(); err != nil {
		return nil, err
	}

	report := &models.BatchReport{
		OperationID:    op.ID,
		SourcePattern:  op.SourcePattern,
		TargetTemplate: op.TargetTemplate,
		DryRun:         op.DryRun,
		StartTime:      time.Now(),
	}

	source := platform.NormalizePath(op.SourcePattern)
	e.logger.Info(ctx, "batch started", logging.Fields{
		"source_pattern":  source,
		"target_template": op.TargetTemplate,
		"force":           op.Force,
		"collision_check": string(op.CollisionCheck),
		"dry_run":         op.DryRun,
	})

	// Discover
	paths, err := discovery.Discover(ctx, e.backend, source)
	if err != nil {
		report.Finish(models.StatusFailed)
		return report, fmt.Errorf("discovery failed: %w", err)
	}
	report.Stats.FilesMatched = len(paths)
	if len(paths) == 0 {
		report.Finish(models.StatusFailed)
		e.logger.Warn(ctx, "no files matched", logging.Fields{"source_pattern": source})
		return report, &models.NoMatchError{Pattern: op.SourcePattern}
	}

	if err := e.formatter.Start(e.writer, len(paths)); err != nil {
		return report, fmt.Errorf("failed to start output: %w", err)
	}

	// Plan
	if err := e.plan(ctx, source, paths, report); err != nil {
		return e.fail(report, err)
	}

	// Validate + EnsureDir + Apply
	switch {
	case op.DryRun:
		if !op.Force {
			if err := e.checkCollisions(ctx, report); err != nil {
				return e.fail(report, err)
			}
		}
		report.Finish(models.StatusDryRun)

	case op.CollisionCheck == models.CollisionPrepass:
		if !op.Force {
			if err := e.checkCollisions(ctx, report); err != nil {
				return e.fail(report, err)
			}
		}
		e.ensureDir(ctx, report)
		if err := e.apply(ctx, report, false); err != nil {
			return e.fail(report, err)
		}
		report.Finish(finalStatus(report))

	default:
		e.ensureDir(ctx, report)
		if err := e.apply(ctx, report, !op.Force); err != nil {
			return e.fail(report, err)
		}
		report.Finish(finalStatus(report))
	}

	e.logger.Info(ctx, "batch finished", logging.Fields{
		"status":  string(report.Status),
		"matched": report.Stats.FilesMatched,
		"moved":   report.Stats.FilesMoved,
		"failed":  report.Stats.FilesFailed,
	})

	if err := e.formatter.Complete(report); err != nil {
		return report, fmt.Errorf("failed to write output: %w", err)
	}
	return report, nil
}

// plan computes every destination before any mutation
func (e *Executor) plan(ctx context.Context, source string, paths []string, report *models.BatchReport) error {
	matcher, err := pattern.Compile(source)
	if err != nil {
		return err
	}

	e.logger.Debug(ctx, "compiled source pattern", logging.Fields{
		"source_pattern": matcher.Source(),
		"expression":     matcher.Expr(),
		"wildcards":      matcher.Wildcards(),
	})

	template := e.operation.TargetTemplate
	if highest := pattern.MaxPlaceholder(template); highest > matcher.Wildcards() {
		e.logger.Warn(ctx, "template references more placeholders than the pattern has wildcards", logging.Fields{
			"placeholder": pattern.Placeholder(highest),
			"wildcards":   matcher.Wildcards(),
		})
	}

	report.Entries = make([]models.MoveEntry, len(paths))
	for i, path := range paths {
		entry := &report.Entries[i]
		entry.Source = path
		entry.Status = models.EntryPlanned

		captures, err := matcher.Captures(path)
		if err != nil {
			report.RecordError(entry, err)
			e.formatter.Progress(output.ProgressUpdate{
				Type: output.UpdatePlanError, Source: path, Current: i + 1, Total: len(paths), Error: err,
			})
			e.logger.Error(ctx, "failed to plan move", err, logging.Fields{"source": path})
			continue
		}

		entry.Captures = captures
		entry.Destination = pattern.Synthesize(template, captures)
		e.logger.Debug(ctx, "planned move", logging.Fields{
			"source":      entry.Source,
			"destination": entry.Destination,
		})
	}

	return nil
}

// fail marks every untouched entry as skipped and reports a fatal error
func (e *Executor) fail(report *models.BatchReport, err error) (*models.BatchReport, error) {
	for i := range report.Entries {
		if report.Entries[i].Status == models.EntryPlanned {
			report.Entries[i].Status = models.EntrySkipped
			report.Stats.FilesSkipped++
		}
	}
	report.Finish(models.StatusFailed)

	e.logger.Error(context.Background(), "batch aborted", err, logging.Fields{
		"moved": report.Stats.FilesMoved,
	})

	e.formatter.Error(err)
	if cerr := e.formatter.Complete(report); cerr != nil {
		return report, fmt.Errorf("%w (output failed: %v)", err, cerr)
	}
	return report, err
}

func finalStatus(report *models.BatchReport) models.BatchStatus {
	if report.Stats.FilesFailed > 0 {
		return models.StatusPartial
	}
	return models.StatusSuccess
}
