package validation

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// FieldError names the configuration field a check failed on.
type FieldError struct {
	Section string
	Field   string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ConfigValidator collects every problem in a configuration section
// instead of stopping at the first one. Checks chain:
//
//	cv.Required("Source.Dir", dir).RangeInt("Batch.Workers", n, 1, 1024)
type ConfigValidator struct {
	section  string
	problems []error
}

// NewConfigValidator returns a validator reporting problems under section.
func NewConfigValidator(section string) *ConfigValidator {
	return &ConfigValidator{section: section}
}

func (cv *ConfigValidator) fail(field string, format string, args ...any) *ConfigValidator {
	cv.problems = append(cv.problems, &FieldError{
		Section: cv.section,
		Field:   field,
		Err:     fmt.Errorf(format, args...),
	})
	return cv
}

// Required rejects an empty string.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		return cv.fail(field, "is required")
	}
	return cv
}

// RangeInt rejects values outside [lo, hi].
func (cv *ConfigValidator) RangeInt(field string, value, lo, hi int) *ConfigValidator {
	if value < lo || value > hi {
		return cv.fail(field, "%d not in [%d, %d]", value, lo, hi)
	}
	return cv
}

// MinDuration rejects durations shorter than lo.
func (cv *ConfigValidator) MinDuration(field string, value, lo time.Duration) *ConfigValidator {
	if value < lo {
		return cv.fail(field, "%v is shorter than %v", value, lo)
	}
	return cv
}

// NonNegative rejects values below zero.
func (cv *ConfigValidator) NonNegative(field string, value int) *ConfigValidator {
	if value < 0 {
		return cv.fail(field, "%d is negative", value)
	}
	return cv
}

// OneOf rejects values not in allowed.
func (cv *ConfigValidator) OneOf(field, value string, allowed []string) *ConfigValidator {
	if !slices.Contains(allowed, value) {
		return cv.fail(field, "%q is not one of %v", value, allowed)
	}
	return cv
}

// Custom records the error returned by fn, if any.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		return cv.fail(field, "%w", err)
	}
	return cv
}

// When runs checks only if cond holds.
func (cv *ConfigValidator) When(cond bool, checks func(*ConfigValidator)) *ConfigValidator {
	if cond {
		checks(cv)
	}
	return cv
}

// Validate returns nil, the single problem, or all problems joined.
func (cv *ConfigValidator) Validate() error {
	switch len(cv.problems) {
	case 0:
		return nil
	case 1:
		return cv.problems[0]
	}
	return fmt.Errorf("%s: %d problems: %w", cv.section, len(cv.problems), errors.Join(cv.problems...))
}

// DefaultOrInt returns value when positive and def otherwise.
func DefaultOrInt(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
