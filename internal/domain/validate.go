package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValidateID checks that an identifier is a positive integer.
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return &ValidationError{Fields: map[string]string{
			field: fmt.Sprintf("must be positive, got %d", id),
		}}
	}
	return nil
}

// ValidateText checks that s has at least one non-whitespace character.
func ValidateText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Fields: map[string]string{field: MsgRequired}}
	}
	return nil
}

// ValidatePositiveAmount checks a monetary value that must be strictly
// greater than zero, such as a base salary.
func ValidatePositiveAmount(field string, v float64) error {
	if !isFinite(v) {
		return &FinancialError{Field: field, Value: v, Msg: "must be a finite number"}
	}
	if v <= 0 {
		return &FinancialError{Field: field, Value: v, Msg: "must be positive"}
	}
	return nil
}

// ValidateNonNegativeAmount checks a monetary value that may be zero, such
// as a bonus, commission rate or sales volume.
func ValidateNonNegativeAmount(field string, v float64) error {
	if !isFinite(v) {
		return &FinancialError{Field: field, Value: v, Msg: "must be a finite number"}
	}
	if v < 0 {
		return &FinancialError{Field: field, Value: v, Msg: "must not be negative"}
	}
	return nil
}

// Collect merges the results of several validators into one error.
// Field-shape failures are merged into a single *ValidationError. A
// *FinancialError is returned only when every shape check passed, so a
// caller sees "bad money" only for otherwise well-formed input.
// Returns nil if every check passed.
func Collect(errs ...error) error {
	fields := make(map[string]string)
	var financial error

	for _, err := range errs {
		if err == nil {
			continue
		}

		var verr *ValidationError
		var ferr *FinancialError
		switch {
		case errors.As(err, &ferr):
			if financial == nil {
				financial = err
			}
		case errors.As(err, &verr):
			for k, v := range verr.Fields {
				fields[k] = v
			}
		default:
			fields["_"] = err.Error()
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return financial
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
