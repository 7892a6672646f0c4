package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities.
type StreamContext interface {
	Context

	// SendComponent patches a single component into the page.
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// ExecuteScript runs a script in the browser.
	ExecuteScript(script string) error
}

// SSEHandler runs for the lifetime of one SSE response.
type SSEHandler func(ctx StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) ExecuteScript(script string) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.ExecuteScript(script)
}

type sseResponse struct {
	handler SSEHandler
}

// Render rejects non-DataStar requests and runs the stream handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that streams through the given handler.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		return stream.SendComponent(views.Toast(), handler.WithTarget("#success-message"))
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
