package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/sdejongh/mmv/pkg/models"
	"golang.org/x/term"
)

const progressTemplate = `{{ string . "prefix" }} {{ counters . }} {{ bar . "[" "=" ">" " " "]" }} {{ percent . }}`

// ProgressFormatter draws a progress bar while entries are moved and prints
// the human summary once the bar is finished. When the writer is not a
// terminal it behaves exactly like HumanFormatter.
type ProgressFormatter struct {
	*HumanFormatter

	mu       sync.Mutex
	bar      *pb.ProgressBar
	warnings []string
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter(opts Options) *ProgressFormatter {
	return &ProgressFormatter{HumanFormatter: NewHumanFormatter(opts)}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// Start initializes the bar
func (f *ProgressFormatter) Start(writer io.Writer, totalEntries int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if writer == nil {
		writer = os.Stdout
	}
	if err := f.HumanFormatter.Start(writer, totalEntries); err != nil {
		return err
	}
	if !IsTerminal(writer) || totalEntries == 0 {
		return nil
	}

	f.bar = pb.ProgressBarTemplate(progressTemplate).New(totalEntries)
	f.bar.SetWriter(writer)
	f.bar.Set("prefix", "moving")
	if width, _, err := term.GetSize(int(writer.(*os.File).Fd())); err == nil && width > 0 {
		f.bar.SetWidth(width)
	}
	f.bar.Start()
	return nil
}

// Progress advances the bar. Warnings are held back until the bar is
// finished so they do not tear the bar line.
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.bar == nil {
		return f.HumanFormatter.Progress(update)
	}

	switch update.Type {
	case UpdateMoveComplete:
		f.bar.Increment()
	case UpdateMoveError, UpdatePlanError:
		f.bar.Increment()
		f.warnings = append(f.warnings, fmt.Sprintf("mmv: %v", update.Error))
	}
	return nil
}

// Complete finishes the bar, flushes held warnings and prints the mappings
func (f *ProgressFormatter) Complete(report *models.BatchReport) error {
	f.mu.Lock()
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
		for _, w := range f.warnings {
			fmt.Fprintln(f.writer, f.colors.warning(w))
		}
		f.warnings = nil
	}
	f.mu.Unlock()

	return f.HumanFormatter.Complete(report)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
