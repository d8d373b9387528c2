package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation      = errors.New("validation error")
	ErrFinancial       = errors.New("financial validation error")
	ErrDuplicate       = errors.New("duplicate identifier")
	ErrNotFound        = errors.New("not found")
	ErrInvalidStatus   = errors.New("invalid status for operation")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnavailable     = errors.New("unavailable")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FinancialError reports a monetary quantity (salary, bonus, rate, volume)
// that is negative, zero where it must be positive, or not a finite number.
// It matches both ErrFinancial and ErrValidation, so callers that only care
// about "bad input" do not need a second check.
type FinancialError struct {
	Field string
	Value float64
	Msg   string
}

func (e *FinancialError) Error() string {
	return fmt.Sprintf("%s: %s: %s, got %v", ErrFinancial.Error(), e.Field, e.Msg, e.Value)
}

func (e *FinancialError) Unwrap() []error {
	return []error{ErrFinancial, ErrValidation}
}
