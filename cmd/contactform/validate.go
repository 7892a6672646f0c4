package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contactform/modules/contact"
)

var errSubmissionInvalid = errors.New("submission is invalid")

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

func newValidateCmd() *cobra.Command {
	var req contact.SubmitRequest

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a submission given as flags",
		Example: `  contactform validate --first-name Jane --last-name Doe \
    --email jane@example.com --message "Hi" --query-type general --consent`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := contact.Validate(req.State())
			if err := renderResult(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.Valid() {
				cmd.SilenceErrors = true
				return errSubmissionInvalid
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.FirstName, "first-name", "", "first name")
	f.StringVar(&req.LastName, "last-name", "", "last name")
	f.StringVar(&req.Email, "email", "", "email address")
	f.StringVar(&req.Message, "message", "", "message body")
	f.StringVar(&req.QueryType, "query-type", "", "query type ("+queryTypeList()+")")
	f.BoolVar(&req.Consent, "consent", false, "consent to being contacted")
	return cmd
}

func queryTypeList() string {
	opts := contact.QueryOptions()
	names := make([]string, len(opts))
	for i, o := range opts {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}

// renderResult prints one row per control in document order.
func renderResult(w io.Writer, res contact.Result) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CONTROL", "STATUS", "MESSAGE")

	for _, c := range contact.Controls() {
		if msg, failed := res.Message(c); failed {
			t.Row(c.String(), failStyle.Render("invalid"), msg)
			continue
		}
		t.Row(c.String(), okStyle.Render("ok"), "")
	}

	summary := okStyle.Render("valid")
	if !res.Valid() {
		summary = failStyle.Render("invalid, focus " + res.First.String())
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), summary)
	return err
}
