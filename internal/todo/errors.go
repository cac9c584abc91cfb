package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidDateTime matches any *InvalidDateTimeError.
	ErrInvalidDateTime = errors.New("invalid local date-time")
	// ErrInvalidCivilTime is returned when a date-time string cannot be parsed.
	ErrInvalidCivilTime = errors.New("invalid date-time")
	// ErrEmptyText is returned when adding a task with blank text.
	ErrEmptyText = errors.New("task text cannot be empty")
)

// NotFoundError reports a mutation aimed at an id that is not in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with id %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidDateTimeError reports a civil time that does not map to exactly one
// instant in the target zone.
type InvalidDateTimeError struct {
	Civil    CivilTime
	Location string
	Reason   string
}

func (e *InvalidDateTimeError) Error() string {
	return fmt.Sprintf("%s %s in %s", e.Civil, e.Reason, e.Location)
}

func (e *InvalidDateTimeError) Is(target error) bool {
	return target == ErrInvalidDateTime
}
