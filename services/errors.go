package services

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFound is returned when an id does not match any stored row. It
// wraps gorm.ErrRecordNotFound at the service edge so controllers never
// have to import gorm.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// nonNegative rejects negative and non-finite values. NaN compares false
// against everything, so a plain < 0 check would wave it through.
func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v <= 0 {
		return invalid(field, "must be greater than zero")
	}
	return nil
}
