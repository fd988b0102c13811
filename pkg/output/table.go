package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sdejongh/mmv/pkg/models"
)

// TableFormatter renders the batch as a table once it is complete
type TableFormatter struct {
	writer io.Writer
	opts   Options
	colors palette
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts Options) *TableFormatter {
	return &TableFormatter{
		opts:   opts,
		colors: newPalette(opts.Color),
	}
}

// Start initializes the formatter
func (f *TableFormatter) Start(writer io.Writer, totalEntries int) error {
	f.writer = writer
	return nil
}

// Progress prints rename warnings as they happen
func (f *TableFormatter) Progress(update ProgressUpdate) error {
	if f.writer == nil {
		return nil
	}
	if update.Type == UpdateMoveError || update.Type == UpdatePlanError {
		fmt.Fprintln(f.writer, f.colors.warning(fmt.Sprintf("mmv: %v", update.Error)))
	}
	return nil
}

// Complete renders every entry with its status
func (f *TableFormatter) Complete(report *models.BatchReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	if f.opts.Quiet || len(report.Entries) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(f.writer)
	t.SetStyle(table.StyleLight)
	t.Style().Color.Header = text.Colors{}
	t.AppendHeader(table.Row{"#", "Source", "Destination", "Status"})

	for i, entry := range report.Entries {
		status := string(entry.Status)
		if entry.Error != "" {
			status += ": " + entry.Error
		}
		t.AppendRow(table.Row{strconv.Itoa(i + 1), entry.Source, entry.Destination, status})
	}

	t.AppendFooter(table.Row{"", "", "moved", fmt.Sprintf("%d/%d", report.Stats.FilesMoved, report.Stats.FilesMatched)})
	t.Render()
	return nil
}

// Error is a no-op: fatal errors are printed once by the command's error handler
func (f *TableFormatter) Error(err error) error {
	return nil
}

// Name returns the formatter name
func (f *TableFormatter) Name() string {
	return "table"
}
