package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// emailRegex accepts local@domain.tld where no part contains whitespace or '@'.
// Looser than RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Cause:   ErrFieldRequired,
		},
	}
}

// ValidEmail validates that value looks like local@domain.tld.
// The value is matched as given, without trimming.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Cause:   ErrInvalidFormat,
		},
	}
}

// OneOf validates that value is one of options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", options),
			Cause:   ErrFieldRequired,
		},
	}
}

// Checked validates that a boolean flag is set, as for a consent checkbox.
func Checked(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be checked",
			Cause:   ErrFieldRequired,
		},
	}
}
