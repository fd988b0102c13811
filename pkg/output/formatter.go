package output

import (
	"io"

	"github.com/sdejongh/mmv/pkg/models"
)

// Update types emitted by the batch executor
const (
	UpdateMoveStart    = "move_start"
	UpdateMoveComplete = "move_complete"
	UpdateMoveError    = "move_error"
	UpdatePlanError    = "plan_error"
	UpdateDirCreated   = "dir_created"
	UpdateDirError     = "dir_error"
)

// ProgressUpdate represents a notification during a batch move
type ProgressUpdate struct {
	Type        string
	Source      string
	Destination string
	Current     int // 1-based entry index
	Total       int
	Error       error
}

// Formatter defines the interface for output formatting.
// Implementations include human-readable, JSON, table and progress bar formatters.
type Formatter interface {
	// Start initializes the formatter for a batch of totalEntries moves
	Start(writer io.Writer, totalEntries int) error

	// Progress reports progress during the batch
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays the result
	Complete(report *models.BatchReport) error

	// Error records a fatal error that stopped the batch
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter registered under name, or nil if there is none
func New(name string, opts Options) Formatter {
	switch name {
	case "human":
		return NewHumanFormatter(opts)
	case "json":
		return NewJSONFormatter()
	case "table":
		return NewTableFormatter(opts)
	default:
		return nil
	}
}

// Options tune the text formatters
type Options struct {
	Color   bool // Colorize output
	Verbose bool // Report directory creation and planning details
	Quiet   bool // Only print warnings
}
