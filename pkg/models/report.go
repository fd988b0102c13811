package models

import (
	"time"
)

// BatchReport represents the results of a batch move
type BatchReport struct {
	// Operation details
	OperationID    string
	SourcePattern  string
	TargetTemplate string
	DryRun         bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Entries in discovery order
	Entries []MoveEntry

	Stats Statistics

	// Per-entry errors encountered
	Errors []MoveError

	// Overall status
	Status BatchStatus
}

// Statistics holds batch counters
type Statistics struct {
	FilesMatched int
	FilesMoved   int
	FilesFailed  int
	FilesSkipped int
	DirsCreated  int
}

// BatchStatus represents the overall result
type BatchStatus string

const (
	// StatusSuccess indicates every entry was moved
	StatusSuccess BatchStatus = "success"
	// StatusPartial indicates some renames failed
	StatusPartial BatchStatus = "partial"
	// StatusFailed indicates the batch stopped on a fatal condition
	StatusFailed BatchStatus = "failed"
	// StatusDryRun indicates the plan was computed but not applied
	StatusDryRun BatchStatus = "dry-run"
)

// MoveError represents an error for a single entry
type MoveError struct {
	Source      string
	Destination string
	Error       string
	Timestamp   time.Time
}

// ExitCode returns the process exit code for the status.
// Individual rename failures do not change the exit code.
func (s BatchStatus) ExitCode() int {
	switch s {
	case StatusFailed:
		return 1
	default:
		return 0
	}
}

// RecordError appends a per-entry error
func (r *BatchReport) RecordError(entry *MoveEntry, err error) {
	entry.Status = EntryFailed
	entry.Error = err.Error()
	r.Errors = append(r.Errors, MoveError{
		Source:      entry.Source,
		Destination: entry.Destination,
		Error:       err.Error(),
		Timestamp:   time.Now(),
	})
	r.Stats.FilesFailed++
}

// Finish stamps the end time and derives the final status
func (r *BatchReport) Finish(status BatchStatus) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Status = status
}
