package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/a-h/templ"
)

//go:generate go run github.com/a-h/templ/cmd/templ generate

// ToastTarget is the id of the toast container.
const ToastTarget = "success-message"

// toastStyleSheet hides a shown toast on the client once --toast-hide-after
// elapses, whether or not the server ever sends the hide patch.
const toastStyleSheet = `<style>
.hidden { display: none; }
.success-message-container.hide { display: none; }
.success-message-container.show {
	animation: toast-auto-hide 0s linear forwards;
	animation-delay: var(--toast-hide-after, 8000ms);
}
@keyframes toast-auto-hide { to { visibility: hidden; opacity: 0; } }
</style>`

// Views renders the form. Any nil field falls back to the default view.
type Views struct {
	Page      func(PageParams) templ.Component
	ErrorNode func(ErrorNodeParams) templ.Component
	Toast     func(ToastParams) templ.Component
}

// PageParams contains data for rendering the full page.
type PageParams struct {
	Title string
	// Action is the submit URL. Control input URLs are Action + "controls/{id}/input".
	Action   string
	Snapshot Snapshot
	Views    *Views
	// ToastHideAfter is how long a shown toast stays visible. Zero means DefaultToastDuration.
	ToastHideAfter time.Duration
}

// ErrorNodeParams contains data for rendering one error node.
type ErrorNodeParams struct {
	Control Control
	Message string
	Hidden  bool
}

// ToastParams contains data for rendering the toast container.
type ToastParams struct {
	Content ToastContent
	Shown   bool
	// HideAfter is the client-side auto-hide delay of a shown toast.
	// Zero means DefaultToastDuration.
	HideAfter time.Duration
}

// DefaultViews returns the built-in markup.
func DefaultViews() *Views {
	return &Views{
		Page:      PageView,
		ErrorNode: ErrorNodeView,
		Toast:     ToastView,
	}
}

func (v *Views) withDefaults() *Views {
	out := DefaultViews()
	if v == nil {
		return out
	}
	if v.Page != nil {
		out.Page = v.Page
	}
	if v.ErrorNode != nil {
		out.ErrorNode = v.ErrorNode
	}
	if v.Toast != nil {
		out.Toast = v.Toast
	}
	return out
}

func toastTimerAttrs(p ToastParams) templ.Attributes {
	d := p.HideAfter
	if d <= 0 {
		d = DefaultToastDuration
	}
	return templ.Attributes{
		"style": fmt.Sprintf("--toast-hide-after: %dms", d.Milliseconds()),
	}
}

func (p PageParams) title() string {
	if p.Title == "" {
		return "Contact us"
	}
	return p.Title
}

func (p PageParams) action() string {
	action := p.Action
	if action == "" {
		action = "/"
	}
	if !strings.HasSuffix(action, "/") {
		action += "/"
	}
	return action
}

func (p PageParams) inputURL(c Control) string {
	return p.action() + "controls/" + string(c) + "/input"
}

func (p PageParams) toast() templ.Component {
	return p.Views.withDefaults().Toast(ToastParams{
		Content:   p.Snapshot.Toast,
		Shown:     p.Snapshot.ToastShown,
		HideAfter: p.ToastHideAfter,
	})
}

func (p PageParams) errorNode(c Control) templ.Component {
	node, ok := p.Snapshot.Errors[c]
	if !ok {
		node = ErrorNode{Hidden: true}
	}
	return p.Views.withDefaults().ErrorNode(ErrorNodeParams{Control: c, Message: node.Message, Hidden: node.Hidden})
}

func (p PageParams) formAttrs() templ.Attributes {
	return templ.Attributes{
		"action":         p.action(),
		"data-on-submit": fmt.Sprintf("@post('%s', {contentType: 'form'})", p.action()),
	}
}

func (p PageParams) focusAttrs(attrs templ.Attributes, id string) templ.Attributes {
	if f := p.Snapshot.Focused; f != "" && f.FocusID() == id {
		attrs["autofocus"] = true
	}
	return attrs
}

func (p PageParams) controlAttrs(c Control) templ.Attributes {
	attrs := templ.Attributes{
		"data-on-input": fmt.Sprintf("@post('%s')", p.inputURL(c)),
	}
	if invalid, ok := p.Snapshot.AriaInvalid[c]; ok {
		attrs["aria-invalid"] = fmt.Sprintf("%t", invalid)
	}
	return p.focusAttrs(attrs, c.FocusID())
}

func (p PageParams) radioAttrs(opt QueryOption) templ.Attributes {
	attrs := templ.Attributes{
		"checked":        QueryOption(p.Snapshot.State.QueryType) == opt,
		"data-on-change": fmt.Sprintf("@post('%s')", p.inputURL(QueryType)),
	}
	return p.focusAttrs(attrs, opt.ID())
}

func (p PageParams) consentAttrs() templ.Attributes {
	attrs := templ.Attributes{
		"checked":        p.Snapshot.State.Consent,
		"data-on-change": fmt.Sprintf("@post('%s')", p.inputURL(Consent)),
	}
	return p.focusAttrs(attrs, Consent.FocusID())
}
