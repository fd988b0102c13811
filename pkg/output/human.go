package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sdejongh/mmv/pkg/models"
)

// palette holds the sprint functions used by the text formatters
type palette struct {
	source  func(a ...interface{}) string
	dest    func(a ...interface{}) string
	warning func(a ...interface{}) string
	dim     func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}

	return palette{
		source:  mk(color.FgCyan),
		dest:    mk(color.FgGreen),
		warning: mk(color.FgYellow),
		dim:     mk(color.Faint),
	}
}

// HumanFormatter prints one "<source> -> <destination>" line per moved file
// and a "mmv: <error>" warning for every failed entry
type HumanFormatter struct {
	writer io.Writer
	opts   Options
	colors palette
	total  int
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(opts Options) *HumanFormatter {
	return &HumanFormatter{
		opts:   opts,
		colors: newPalette(opts.Color),
	}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalEntries int) error {
	f.writer = writer
	f.total = totalEntries
	return nil
}

// Progress prints warnings as they happen
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	if f.writer == nil {
		return nil
	}

	switch update.Type {
	case UpdateMoveError, UpdatePlanError:
		fmt.Fprintln(f.writer, f.colors.warning(fmt.Sprintf("mmv: %v", update.Error)))

	case UpdateDirError:
		if f.opts.Verbose {
			fmt.Fprintln(f.writer, f.colors.warning(fmt.Sprintf("mmv: %v", update.Error)))
		}

	case UpdateDirCreated:
		if f.opts.Verbose {
			fmt.Fprintln(f.writer, f.colors.dim(fmt.Sprintf("created directory %s", update.Destination)))
		}
	}

	return nil
}

// Complete prints the mapping of every moved entry, in discovery order
func (f *HumanFormatter) Complete(report *models.BatchReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	if f.opts.Quiet {
		return nil
	}

	for _, entry := range report.Entries {
		switch {
		case entry.Moved():
			f.printMapping(entry, "")
		case report.DryRun && entry.Status == models.EntryPlanned:
			f.printMapping(entry, f.colors.dim(" (dry run)"))
		}
	}

	if f.opts.Verbose {
		fmt.Fprintf(f.writer, "%s\n", f.colors.dim(fmt.Sprintf(
			"%d matched, %d moved, %d failed, %d skipped in %s",
			report.Stats.FilesMatched, report.Stats.FilesMoved,
			report.Stats.FilesFailed, report.Stats.FilesSkipped,
			formatDuration(report.Duration))))
	}

	return nil
}

func (f *HumanFormatter) printMapping(entry models.MoveEntry, suffix string) {
	fmt.Fprintf(f.writer, "%s -> %s%s\n",
		f.colors.source(entry.Source), f.colors.dest(entry.Destination), suffix)
}

// Error is a no-op: fatal errors are printed once by the command's error handler
func (f *HumanFormatter) Error(err error) error {
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
