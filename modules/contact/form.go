package contact

import (
	"fmt"
	"slices"
)

// Control identifies one form control by its element id.
type Control string

const (
	FirstName Control = "first-name"
	LastName  Control = "last-name"
	Email     Control = "email"
	Message   Control = "message"
	QueryType Control = "query-type"
	Consent   Control = "consent"
)

// documentOrder lists every control in the order it appears in the form.
var documentOrder = []Control{FirstName, LastName, Email, Message, QueryType, Consent}

// Controls returns all controls in document order.
func Controls() []Control {
	return slices.Clone(documentOrder)
}

// TextControls returns the four text fields in document order.
func TextControls() []Control {
	return []Control{FirstName, LastName, Email, Message}
}

// ParseControl resolves a control id.
func ParseControl(id string) (Control, error) {
	c := Control(id)
	if !slices.Contains(documentOrder, c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	return c, nil
}

func (c Control) String() string {
	return string(c)
}

// IsText reports whether c is a text input or the textarea.
func (c Control) IsText() bool {
	switch c {
	case FirstName, LastName, Email, Message:
		return true
	}
	return false
}

// ErrorID is the id of the element holding c's error message.
func (c Control) ErrorID() string {
	return string(c) + "-error"
}

// FocusID is the id of the element that receives focus when c fails.
// The radio group focuses its first option.
func (c Control) FocusID() string {
	switch c {
	case QueryType:
		return queryOptions[0].ID()
	case Consent:
		return "consent-check"
	}
	return string(c)
}

// QueryOption is one choice of the query type radio group.
type QueryOption string

const (
	QueryGeneral QueryOption = "general"
	QuerySupport QueryOption = "support"
)

var queryOptions = []QueryOption{QueryGeneral, QuerySupport}

// QueryOptions returns the radio options in document order.
func QueryOptions() []QueryOption {
	return slices.Clone(queryOptions)
}

// ID is the element id of the radio input.
func (q QueryOption) ID() string {
	return "query-" + string(q)
}

// Label is the visible text of the option.
func (q QueryOption) Label() string {
	switch q {
	case QueryGeneral:
		return "General Enquiry"
	case QuerySupport:
		return "Support Request"
	}
	return string(q)
}

// Validation messages.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSelectQuery  = "Please select a query type"
	MsgConsent      = "To submit this form, please consent to being contacted"
)

// FormState is a snapshot of the form's values.
type FormState struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
	QueryType string // empty when no option is selected
	Consent   bool
}

// Value returns the current value of a text control.
func (s FormState) Value(c Control) string {
	switch c {
	case FirstName:
		return s.FirstName
	case LastName:
		return s.LastName
	case Email:
		return s.Email
	case Message:
		return s.Message
	case QueryType:
		return s.QueryType
	}
	return ""
}

// QuerySelected reports whether QueryType holds a known option.
func (s FormState) QuerySelected() bool {
	return slices.Contains(queryOptions, QueryOption(s.QueryType))
}

// SubmitRequest is the form body of a submission.
type SubmitRequest struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email"`
	Message   string `form:"message"`
	QueryType string `form:"query_type"`
	Consent   bool   `form:"consent"`
}

// State converts the request into a FormState.
func (r SubmitRequest) State() FormState {
	return FormState(r)
}
