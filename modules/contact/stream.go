package contact

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/contactform/handler"
)

// streamDocument is a Document that patches a live page over DataStar SSE.
// The first send error is kept and later mutations are dropped.
type streamDocument struct {
	stream    handler.StreamContext
	views     *Views
	toast     ToastContent
	hideAfter time.Duration
	err       error
}

// newStreamDocument binds a document to stream. Shown toasts carry hideAfter
// so the browser hides them even if the stream closes first.
func newStreamDocument(stream handler.StreamContext, views *Views, hideAfter time.Duration) *streamDocument {
	return &streamDocument{stream: stream, views: views.withDefaults(), hideAfter: hideAfter}
}

// Err returns the first send error.
func (d *streamDocument) Err() error {
	return d.err
}

func (d *streamDocument) patch(c handler.TemplComponent, target string, opts ...handler.TemplOption) {
	if d.err == nil {
		d.err = d.stream.SendComponent(c, append([]handler.TemplOption{handler.WithTarget("#" + target)}, opts...)...)
	}
}

func (d *streamDocument) script(format string, args ...any) {
	if d.err == nil {
		d.err = d.stream.ExecuteScript(fmt.Sprintf(format, args...))
	}
}

func (d *streamDocument) ShowError(c Control, message string) {
	d.patch(d.views.ErrorNode(ErrorNodeParams{Control: c, Message: message}), c.ErrorID())
}

func (d *streamDocument) HideError(c Control) {
	d.patch(d.views.ErrorNode(ErrorNodeParams{Control: c, Hidden: true}), c.ErrorID())
}

func (d *streamDocument) SetInvalid(c Control, invalid bool) {
	d.script(`document.getElementById(%q)?.setAttribute("aria-invalid", "%t")`, c.String(), invalid)
}

func (d *streamDocument) Focus(c Control) {
	d.script(`document.getElementById(%q)?.focus()`, c.FocusID())
}

func (d *streamDocument) ClearValue(c Control) {
	d.script(`(el => { if (el) el.value = "" })(document.getElementById(%q))`, c.String())
}

func (d *streamDocument) ShowToast(content ToastContent) {
	d.toast = content
	d.patch(d.views.Toast(ToastParams{Content: content, Shown: true, HideAfter: d.hideAfter}),
		ToastTarget, handler.WithPatchMode(handler.PatchReplace))
}

func (d *streamDocument) HideToast() {
	d.patch(d.views.Toast(ToastParams{Content: d.toast, Shown: false}),
		ToastTarget, handler.WithPatchMode(handler.PatchReplace))
}
