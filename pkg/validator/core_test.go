package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "John"),
			validator.Checked("consent", true),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in rule order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("last_name", ""),
			validator.Required("first_name", "John"),
			validator.Checked("consent", false),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"last_name", "consent"}, errs.Fields())
		assert.Equal(t, "field is required", errs.Get("last_name"))
		assert.Equal(t, "must be checked", errs.Get("consent"))
		assert.Empty(t, errs.Get("first_name"))
	})

	t.Run("wraps sentinel causes", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.ValidEmail("email", "abc"))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.True(t, errors.Is(errs[0], validator.ErrInvalidFormat))
		assert.Equal(t, "email: must be a valid email address", errs[0].Error())
	})
}

func TestFirstOf(t *testing.T) {
	t.Parallel()

	email := func(value string) validator.Rule {
		return validator.FirstOf(
			validator.Required("email", value).WithMessage("required"),
			validator.ValidEmail("email", value).WithMessage("invalid"),
		)
	}

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "empty reports first rule", value: "", wantMsg: "required"},
		{name: "whitespace reports first rule", value: "   ", wantMsg: "required"},
		{name: "malformed reports second rule", value: "abc@def", wantMsg: "invalid"},
		{name: "valid passes", value: "a@b.co", wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := validator.ExtractValidationErrors(validator.Apply(email(tt.value)))
			if tt.wantMsg == "" {
				assert.Nil(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs.Get("email"))
		})
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add(validator.ValidationError{Field: "email", Message: "bad"})
	errs.Add(validator.ValidationError{Field: "email", Message: "worse"})
	assert.Equal(t, "bad", errs.Get("email"))
	assert.Equal(t, []string{"email"}, errs.Fields())
	assert.Equal(t, "validation failed: email: bad; email: worse", errs.Error())

	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
}
