package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single failed rule.
type ValidationError struct {
	Field   string
	Message string
	// Cause is one of the package sentinel errors describing the failure kind.
	Cause error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// ValidationErrors represents a collection of validation errors in rule order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Get returns the first message reported for field, or an empty string.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields returns the failing field names without duplicates, in rule order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// failure, when set, resolves the reported error after Check has failed.
	failure func() ValidationError
}

// WithMessage returns a copy of the rule reporting message instead of its default text.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	r.failure = nil
	return r
}

func (r Rule) reported() ValidationError {
	if r.failure != nil {
		return r.failure()
	}
	return r.Error
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.reported())
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// FirstOf combines rules for one field into a single rule that reports the
// error of the first failing rule. Rules after the first failure are not evaluated.
func FirstOf(rules ...Rule) Rule {
	var failed ValidationError
	combined := Rule{
		Check: func() bool {
			for _, rule := range rules {
				if !rule.Check() {
					failed = rule.reported()
					return false
				}
			}
			return true
		},
		failure: func() ValidationError { return failed },
	}
	if len(rules) > 0 {
		combined.Error = rules[0].Error
	}
	return combined
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
