package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Codec errors
	ErrMsgUnknownMaterial  = "unknown material"
	ErrMsgInvalidColor     = "invalid color"
	ErrMsgInvalidShape     = "decoded payload has unexpected shape"
	ErrMsgInvalidComponent = "invalid text component"

	// Snapshot errors
	ErrMsgSnapshotNotFound = "snapshot not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Codec errors
	ErrUnknownMaterial  = errors.New(ErrMsgUnknownMaterial)
	ErrInvalidColor     = errors.New(ErrMsgInvalidColor)
	ErrInvalidShape     = errors.New(ErrMsgInvalidShape)
	ErrInvalidComponent = errors.New(ErrMsgInvalidComponent)

	// Snapshot errors
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
