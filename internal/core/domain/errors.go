package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a campaign does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("campaign not found")
	// ErrExecutionInProgress is returned when another run holds the
	// campaign.
	ErrExecutionInProgress = errors.New("campaign execution already in progress")
	// ErrInvalidTransition is returned when the campaign status does not
	// allow the requested operation.
	ErrInvalidTransition = errors.New("invalid campaign status transition")
	// ErrNoChannelSucceeded is returned alongside the per-channel results
	// when every attempted channel failed.
	ErrNoChannelSucceeded = errors.New("no channel succeeded")
	// ErrGenerationFallback marks generator output that could not be used.
	// It never leaves the generator package; callers get canned data.
	ErrGenerationFallback = errors.New("generation fell back to canned output")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// IntegrationError is a failed call to an external platform.
type IntegrationError struct {
	Channel    Channel
	Op         string
	StatusCode int
	Err        error
}

func (e *IntegrationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status=%d: %v", e.Channel, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Channel, e.Op, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

// PersistenceError is a failed read or write against the backing store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError maps field names to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
