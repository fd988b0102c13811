package models

import (
	"time"
)

// CollisionCheck defines when destinations are checked for existing files
type CollisionCheck string

const (
	// CollisionPrepass checks every destination before any file is moved
	CollisionPrepass CollisionCheck = "prepass"
	// CollisionInline checks each destination right before moving it.
	// A collision detected mid-batch leaves earlier entries already moved.
	CollisionInline CollisionCheck = "inline"
)

// BatchOperation represents one mmv invocation
type BatchOperation struct {
	ID             string
	SourcePattern  string
	TargetTemplate string
	Force          bool // Overwrite existing destinations
	DryRun         bool
	CollisionCheck CollisionCheck
	CreateDirs     bool // Create the template's parent directory before moving
	CreatedAt      time.Time
}

// Validate checks if the operation configuration is valid
func (op *BatchOperation) Validate() error {
	if op.SourcePattern == "" {
		return &ValidationError{Field: "SourcePattern", Message: "source pattern is required"}
	}
	if op.TargetTemplate == "" {
		return &ValidationError{Field: "TargetTemplate", Message: "target template is required"}
	}
	switch op.CollisionCheck {
	case CollisionPrepass, CollisionInline:
	default:
		return &ValidationError{
			Field:   "CollisionCheck",
			Message: "must be 'prepass' or 'inline', got '" + string(op.CollisionCheck) + "'",
		}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
