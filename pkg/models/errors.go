package models

import "fmt"

// NoMatchError is returned when the source pattern matched no existing path
type NoMatchError struct {
	Pattern string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("files for pattern %s not found", e.Pattern)
}

// CollisionReason explains why a destination is unusable
type CollisionReason string

const (
	// CollisionExists means the destination already exists on disk
	CollisionExists CollisionReason = "exists"
	// CollisionDuplicate means two sources map to the same destination
	CollisionDuplicate CollisionReason = "duplicate"
)

// CollisionError is returned when a destination cannot be written without --force
type CollisionError struct {
	Source      string
	Destination string
	Reason      CollisionReason
	// Other is the earlier source claiming the same destination (duplicate only)
	Other string
}

func (e *CollisionError) Error() string {
	if e.Reason == CollisionDuplicate {
		return fmt.Sprintf("not able to move %s and %s to the same file %s", e.Other, e.Source, e.Destination)
	}
	return fmt.Sprintf("not able to replace existing file %s", e.Destination)
}
