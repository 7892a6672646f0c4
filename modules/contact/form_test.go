package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/modules/contact"
)

func TestParseControl(t *testing.T) {
	t.Parallel()

	for _, c := range contact.Controls() {
		got, err := contact.ParseControl(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := contact.ParseControl("phone")
	assert.ErrorIs(t, err, contact.ErrUnknownControl)
}

func TestControls_DocumentOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []contact.Control{
		contact.FirstName, contact.LastName, contact.Email,
		contact.Message, contact.QueryType, contact.Consent,
	}, contact.Controls())

	for _, c := range contact.TextControls() {
		assert.True(t, c.IsText(), c)
	}
	assert.False(t, contact.QueryType.IsText())
	assert.False(t, contact.Consent.IsText())
}

func TestControl_IDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "email-error", contact.Email.ErrorID())
	assert.Equal(t, "email", contact.Email.FocusID())
	assert.Equal(t, "query-general", contact.QueryType.FocusID())
	assert.Equal(t, "consent-check", contact.Consent.FocusID())
}

func TestSubmitRequest_State(t *testing.T) {
	t.Parallel()

	req := contact.SubmitRequest{FirstName: "a", LastName: "b", Email: "c", Message: "d", QueryType: "support", Consent: true}
	state := req.State()

	assert.Equal(t, "a", state.FirstName)
	assert.Equal(t, "d", state.Value(contact.Message))
	assert.True(t, state.QuerySelected())
	assert.True(t, state.Consent)
}
