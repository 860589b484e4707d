package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateName      = errors.New("a record with this name already exists")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrEmptyRequest       = errors.New("reservation must contain at least one ticket")
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
)

// OutOfBoundsError reports a seat coordinate outside the physical bounds of a hall.
type OutOfBoundsError struct {
	Dimension string
	Value     int
	Min       int
	Max       int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s number must be in available range: (%d, %d)", e.Dimension, e.Min, e.Max)
}

// SeatTakenError is returned when a ticket already exists for the seat of a performance,
// or when the same seat is requested twice in one reservation.
type SeatTakenError struct {
	PerformanceID int
	Row           int
	Seat          int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) is already taken for performance %d", e.Row, e.Seat, e.PerformanceID)
}

type PerformanceNotFoundError struct {
	PerformanceID int
}

func (e *PerformanceNotFoundError) Error() string {
	return fmt.Sprintf("performance %d not found", e.PerformanceID)
}

func (e *PerformanceNotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// BookingFailedError wraps a storage or transaction failure. Nothing was persisted.
type BookingFailedError struct {
	Err error
}

func (e *BookingFailedError) Error() string {
	return fmt.Sprintf("booking failed: %v", e.Err)
}

func (e *BookingFailedError) Unwrap() error {
	return e.Err
}
