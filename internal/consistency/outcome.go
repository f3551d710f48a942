package consistency

import (
	"errors"
	"fmt"

	"targetrack/internal/models"
)

// Status tags how far a two-step write got.
type Status int

const (
	BothSucceeded Status = iota
	FirstFailed
	SecondFailedAfterFirstSucceeded
)

func (s Status) String() string {
	switch s {
	case BothSucceeded:
		return "both_succeeded"
	case FirstFailed:
		return "first_failed"
	case SecondFailedAfterFirstSucceeded:
		return "second_failed_after_first_succeeded"
	}
	return "unknown"
}

// Operation names the composite write an Outcome describes.
type Operation string

const (
	OpDeleteTarget Operation = "delete target"
	OpSaveTarget   Operation = "save target and achievement"
)

// ErrPartialWrite matches any outcome whose first step landed and whose
// second step failed.
var ErrPartialWrite = errors.New("partial write")

// Outcome is the result of a two-step write.
type Outcome struct {
	Operation     Operation
	TargetID      string
	Status        Status
	FirstErr      error
	SecondErr     error
	SecondSkipped bool

	Target      *models.Target
	Achievement *models.Achievement
}

// OK reports whether every attempted step succeeded.
func (o Outcome) OK() bool {
	return o.Status == BothSucceeded
}

// Err returns nil on success, the wrapped first-step error when nothing was
// written, or a *PartialWriteError when the first step already landed.
func (o Outcome) Err() error {
	switch o.Status {
	case BothSucceeded:
		return nil
	case FirstFailed:
		return fmt.Errorf("%s %s: %w", o.Operation, o.TargetID, o.FirstErr)
	default:
		return &PartialWriteError{Operation: o.Operation, TargetID: o.TargetID, Err: o.SecondErr}
	}
}

// PartialWriteError reports that the target write landed but the
// achievement write did not.
type PartialWriteError struct {
	Operation Operation
	TargetID  string
	Err       error
}

func (e *PartialWriteError) Error() string {
	switch e.Operation {
	case OpDeleteTarget:
		return "target " + e.TargetID + " was deleted but its achievement could not be removed: " + e.Err.Error()
	default:
		return "target " + e.TargetID + " was updated but the achievement was not saved: " + e.Err.Error()
	}
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrPartialWrite) identify partial writes.
func (e *PartialWriteError) Is(target error) bool {
	return target == ErrPartialWrite
}
