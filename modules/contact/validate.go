package contact

import (
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Result is the outcome of one validation pass.
type Result struct {
	// Errors maps every failing control to its message.
	Errors map[Control]string
	// First is the first failing control in document order, empty when valid.
	First Control
}

// Valid reports whether no control failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Message returns the error message for c.
func (r Result) Message(c Control) (string, bool) {
	msg, ok := r.Errors[c]
	return msg, ok
}

// Failed returns the failing controls in document order.
func (r Result) Failed() []Control {
	failed := make([]Control, 0, len(r.Errors))
	for _, c := range documentOrder {
		if _, ok := r.Errors[c]; ok {
			failed = append(failed, c)
		}
	}
	return failed
}

// Validate checks s and returns the failing controls with their messages.
// Each control reports at most one message.
func Validate(s FormState) Result {
	err := validator.Apply(
		validator.Required(FirstName.String(), s.FirstName).WithMessage(MsgRequired),
		validator.Required(LastName.String(), s.LastName).WithMessage(MsgRequired),
		validator.FirstOf(
			validator.Required(Email.String(), s.Email).WithMessage(MsgRequired),
			validator.ValidEmail(Email.String(), s.Email).WithMessage(MsgInvalidEmail),
		),
		validator.Required(Message.String(), s.Message).WithMessage(MsgRequired),
		validator.OneOf(QueryType.String(), QueryOption(s.QueryType), queryOptions).WithMessage(MsgSelectQuery),
		validator.Checked(Consent.String(), s.Consent).WithMessage(MsgConsent),
	)

	res := Result{Errors: map[Control]string{}}
	errs := validator.ExtractValidationErrors(err)
	for _, field := range errs.Fields() {
		res.Errors[Control(field)] = errs.Get(field)
	}
	if failed := res.Failed(); len(failed) > 0 {
		res.First = failed[0]
	}
	return res
}
