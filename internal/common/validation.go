package common

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joseph-ayodele/resume-site/internal/entity"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Validator provides validation utilities
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
	}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value any, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// Error returns a combined error, or nil when every rule passed.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	return errors.New(v.ErrorMessage())
}

// ErrorMessage returns a combined error message as string
func (v *Validator) ErrorMessage() string {
	if !v.HasErrors() {
		return ""
	}

	var messages []string
	for _, err := range v.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName string, value any) *ValidationError

// Range accepts integers within [lo, hi].
func Range(lo, hi int) ValidationRule {
	return func(fieldName string, value any) *ValidationError {
		n, ok := value.(int)
		if !ok {
			return &ValidationError{Field: fieldName, Value: value, Message: "must be an integer"}
		}
		if n < lo || n > hi {
			return &ValidationError{
				Field:   fieldName,
				Value:   value,
				Message: fmt.Sprintf("must be between %d and %d", lo, hi),
			}
		}
		return nil
	}
}

// OptionalURL accepts "", an http(s) URL, or a scheme-less "host/path" link.
func OptionalURL(fieldName string, value any) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	if strings.ContainsAny(str, " \t\n") {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a URL or empty"}
	}
	u, err := url.Parse(str)
	if err != nil {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a URL or empty"}
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: fieldName, Value: value, Message: "must use http or https"}
	}
	return nil
}

// UniqueIDs rejects duplicate ids within one section.
func UniqueIDs(fieldName string, value any) *ValidationError {
	ids, ok := value.([]int)
	if !ok {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return &ValidationError{Field: fieldName, Value: id, Message: "duplicate id"}
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ValidateResume checks the typed record for constraints JSON decoding cannot express.
func ValidateResume(r entity.Resume) error {
	v := NewValidator()

	ids := make([]int, 0, len(r.Experience))
	for _, e := range r.Experience {
		ids = append(ids, e.ID)
	}
	v.Field("experience[].id", ids, UniqueIDs)

	for i, s := range r.Skills {
		v.Field(fmt.Sprintf("skills[%d].level", i), s.Level, Range(0, 100))
	}

	ids = ids[:0]
	for i, p := range r.Projects {
		ids = append(ids, p.ID)
		v.Field(fmt.Sprintf("projects[%d].github", i), p.Github, OptionalURL)
		v.Field(fmt.Sprintf("projects[%d].demo", i), p.Demo, OptionalURL)
	}
	v.Field("projects[].id", ids, UniqueIDs)

	ids = ids[:0]
	for _, e := range r.Education {
		ids = append(ids, e.ID)
	}
	v.Field("education[].id", ids, UniqueIDs)

	return v.Error()
}
