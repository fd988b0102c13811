package models

// EntryStatus tracks a single move through the batch
type EntryStatus string

const (
	// EntryPlanned means the destination was computed but nothing was done yet
	EntryPlanned EntryStatus = "planned"
	// EntryMoved means the rename succeeded
	EntryMoved EntryStatus = "moved"
	// EntryFailed means planning or renaming failed for this entry
	EntryFailed EntryStatus = "failed"
	// EntrySkipped means the batch stopped before reaching this entry
	EntrySkipped EntryStatus = "skipped"
)

// MoveEntry pairs a discovered path with its computed destination
type MoveEntry struct {
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Captures    []string    `json:"captures,omitempty"`
	Status      EntryStatus `json:"status"`
	Error       string      `json:"error,omitempty"`
}

// Moved reports whether the entry was renamed
func (e *MoveEntry) Moved() bool {
	return e.Status == EntryMoved
}
