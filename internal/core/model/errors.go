package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfig is matched by every rejected duration input.
var ErrInvalidConfig = errors.New("invalid configuration input")

// InputError describes a single rejected field.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (err *InputError) Error() string {
	return fmt.Sprintf("%s: %q %s", err.Field, err.Value, err.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) succeed.
func (err *InputError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ParseMinutes converts raw user text into a duration within bounds.
func ParseMinutes(field, raw string, bounds Bounds) (time.Duration, error) {
	value := strings.TrimSpace(raw)
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, &InputError{Field: field, Value: raw, Reason: "is not a whole number"}
	}
	if !bounds.Contains(minutes) {
		return 0, &InputError{
			Field:  field,
			Value:  raw,
			Reason: fmt.Sprintf("must be between %d and %d minutes", bounds.MinMinutes, bounds.MaxMinutes),
		}
	}
	return time.Duration(minutes) * time.Minute, nil
}
