package contact

import (
	"maps"
	"sync"
)

// Document is the page the validator mutates.
// Implementations tolerate controls without an error node silently.
type Document interface {
	ShowError(c Control, message string)
	HideError(c Control)
	// SetInvalid sets the aria-invalid attribute of c.
	SetInvalid(c Control, invalid bool)
	Focus(c Control)
	ClearValue(c Control)
	ShowToast(content ToastContent)
	HideToast()
}

// ErrorNode is the inline message element of a control.
type ErrorNode struct {
	Message string
	Hidden  bool
}

// Snapshot is a point-in-time copy of a Page.
type Snapshot struct {
	State  FormState
	Errors map[Control]ErrorNode
	// AriaInvalid holds the attribute value per control; absent means unset.
	AriaInvalid map[Control]bool
	Focused     Control
	Toast       ToastContent
	ToastShown  bool
}

// Visible returns the message of c when its error node is shown.
func (s Snapshot) Visible(c Control) (string, bool) {
	node, ok := s.Errors[c]
	if !ok || node.Hidden {
		return "", false
	}
	return node.Message, true
}

// Page is an in-memory Document holding form values and their presentation.
// It is safe for concurrent use.
type Page struct {
	mu          sync.RWMutex
	state       FormState
	errors      map[Control]*ErrorNode
	ariaInvalid map[Control]bool
	focused     Control
	toast       ToastContent
	toastShown  bool
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithoutErrorNode removes the error node of c from the page.
func WithoutErrorNode(c Control) PageOption {
	return func(p *Page) {
		delete(p.errors, c)
	}
}

// NewPage creates a page holding state with a hidden error node per control.
func NewPage(state FormState, opts ...PageOption) *Page {
	p := &Page{
		state:       state,
		errors:      make(map[Control]*ErrorNode, len(documentOrder)),
		ariaInvalid: make(map[Control]bool),
	}
	for _, c := range documentOrder {
		p.errors[c] = &ErrorNode{Hidden: true}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Page) ShowError(c Control, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if node, ok := p.errors[c]; ok {
		node.Message = message
		node.Hidden = false
	}
}

func (p *Page) HideError(c Control) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if node, ok := p.errors[c]; ok {
		node.Hidden = true
	}
}

func (p *Page) SetInvalid(c Control, invalid bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ariaInvalid[c] = invalid
}

func (p *Page) Focus(c Control) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.focused = c
}

func (p *Page) ClearValue(c Control) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch c {
	case FirstName:
		p.state.FirstName = ""
	case LastName:
		p.state.LastName = ""
	case Email:
		p.state.Email = ""
	case Message:
		p.state.Message = ""
	}
}

func (p *Page) ShowToast(content ToastContent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toast = content
	p.toastShown = true
}

func (p *Page) HideToast() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toastShown = false
}

// SetState replaces the form values, as typing into the page would.
func (p *Page) SetState(state FormState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
}

// State returns the current form values.
func (p *Page) State() FormState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Snapshot copies the page.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	errs := make(map[Control]ErrorNode, len(p.errors))
	for c, node := range p.errors {
		errs[c] = *node
	}
	return Snapshot{
		State:       p.state,
		Errors:      errs,
		AriaInvalid: maps.Clone(p.ariaInvalid),
		Focused:     p.focused,
		Toast:       p.toast,
		ToastShown:  p.toastShown,
	}
}
