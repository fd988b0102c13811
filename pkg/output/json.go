package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/mmv/pkg/models"
)

// JSONFormatter writes the batch report as a single JSON document for scripting
type JSONFormatter struct {
	writer   io.Writer
	total    int
	fatalErr error
}

// JSONReportData represents the final report document
type JSONReportData struct {
	OperationID    string          `json:"operation_id"`
	SourcePattern  string          `json:"source_pattern"`
	TargetTemplate string          `json:"target_template"`
	Status         string          `json:"status"`
	DryRun         bool            `json:"dry_run"`
	Duration       string          `json:"duration"`
	DurationMs     int64           `json:"duration_ms"`
	Stats          JSONStatsData   `json:"stats"`
	Moves          []JSONMoveData  `json:"moves"`
	Errors         []JSONErrorData `json:"errors,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// JSONStatsData represents batch counters
type JSONStatsData struct {
	FilesMatched int `json:"files_matched"`
	FilesMoved   int `json:"files_moved"`
	FilesFailed  int `json:"files_failed"`
	FilesSkipped int `json:"files_skipped"`
	DirsCreated  int `json:"dirs_created"`
}

// JSONMoveData represents one entry
type JSONMoveData struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Captures    []string `json:"captures"`
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
}

// JSONErrorData represents a per-entry error
type JSONErrorData struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Error       string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalEntries int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.total = totalEntries
	return nil
}

// Progress is ignored so that the output stays a single parseable document
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	return nil
}

// Complete encodes the report
func (f *JSONFormatter) Complete(report *models.BatchReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	data := JSONReportData{
		OperationID:    report.OperationID,
		SourcePattern:  report.SourcePattern,
		TargetTemplate: report.TargetTemplate,
		Status:         string(report.Status),
		DryRun:         report.DryRun,
		Duration:       report.Duration.Round(time.Millisecond).String(),
		DurationMs:     report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			FilesMatched: report.Stats.FilesMatched,
			FilesMoved:   report.Stats.FilesMoved,
			FilesFailed:  report.Stats.FilesFailed,
			FilesSkipped: report.Stats.FilesSkipped,
			DirsCreated:  report.Stats.DirsCreated,
		},
		Moves: make([]JSONMoveData, 0, len(report.Entries)),
	}

	for _, entry := range report.Entries {
		captures := entry.Captures
		if captures == nil {
			captures = []string{}
		}
		data.Moves = append(data.Moves, JSONMoveData{
			Source:      entry.Source,
			Destination: entry.Destination,
			Captures:    captures,
			Status:      string(entry.Status),
			Error:       entry.Error,
		})
	}

	for _, e := range report.Errors {
		data.Errors = append(data.Errors, JSONErrorData{
			Source:      e.Source,
			Destination: e.Destination,
			Error:       e.Error,
		})
	}

	if f.fatalErr != nil {
		data.Error = f.fatalErr.Error()
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Error records the fatal error so it is embedded in the report
func (f *JSONFormatter) Error(err error) error {
	f.fatalErr = err
	return nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
