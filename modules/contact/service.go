package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/pkg/binder"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

// Service serves the contact form.
type Service struct {
	log              *slog.Logger
	views            *Views
	errorHandler     handler.ErrorHandler[handler.Context]
	title            string
	action           string
	toastDuration    time.Duration
	toastContent     ToastContent
	submitMiddleware []func(http.Handler) http.Handler
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithViews replaces some or all of the default views.
func WithViews(v *Views) ServiceOption {
	return func(s *Service) {
		s.views = v.withDefaults()
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithTitle sets the page title.
func WithTitle(title string) ServiceOption {
	return func(s *Service) {
		s.title = title
	}
}

// WithAction sets the URL the service is mounted at, used in form markup.
func WithAction(action string) ServiceOption {
	return func(s *Service) {
		s.action = action
	}
}

// WithToast sets the toast duration and content.
func WithToast(d time.Duration, content ToastContent) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.toastDuration = d
		}
		if content != (ToastContent{}) {
			s.toastContent = content
		}
	}
}

// WithSubmitMiddleware wraps the submit route, e.g. with a rate limiter.
func WithSubmitMiddleware(mw ...func(http.Handler) http.Handler) ServiceOption {
	return func(s *Service) {
		s.submitMiddleware = append(s.submitMiddleware, mw...)
	}
}

func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		log:           slog.Default(),
		views:         DefaultViews(),
		action:        "/",
		toastDuration: DefaultToastDuration,
		toastContent:  DefaultToastContent,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{})
	}
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.With(s.submitMiddleware...).Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
	))

	r.Post("/controls/{control}/input", handler.Wrap(s.input,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) pageParams(page *Page) PageParams {
	return PageParams{
		Title:    s.title,
		Action:   s.action,
		Snapshot: page.Snapshot(),
		Views:    s.views,
		// The page has no stream to send a hide later; the toast hides itself.
		ToastHideAfter: s.toastDuration,
	}
}

func (s *Service) validatorOptions(scheduler Scheduler) []Option {
	return []Option{
		WithScheduler(scheduler),
		WithToastDuration(s.toastDuration),
		WithToastContent(s.toastContent),
	}
}

func (s *Service) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(s.pageParams(NewPage(FormState{}))))
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	state := req.State()

	if !handler.IsDataStar(ctx.Request()) {
		// The rendered toast hides itself after toastDuration, so the queued
		// hide is never drained.
		page := NewPage(state)
		res, err := New(page, s.validatorOptions(NewQueueScheduler())...).Submit(ctx, state)
		s.logResult(ctx, res, err)

		status := http.StatusOK
		if !res.Valid() {
			status = http.StatusUnprocessableEntity
		}
		return handler.TemplWithStatus(status, s.views.Page(s.pageParams(page)))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		doc := newStreamDocument(stream, s.views, s.toastDuration)
		queue := NewQueueScheduler()

		res, err := New(doc, s.validatorOptions(queue)...).Submit(stream, state)
		s.logResult(stream, res, err)
		if err := doc.Err(); err != nil {
			return errors.Join(handler.ErrStreamStarted, err)
		}

		// Send the hide while the client is still connected. The shown toast
		// carries its own deadline, so a closed stream still hides it.
		if err := queue.Drain(stream); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return errors.Join(handler.ErrStreamStarted, err)
		}
		if err := doc.Err(); err != nil {
			return errors.Join(handler.ErrStreamStarted, err)
		}
		return nil
	})
}

func (s *Service) input(ctx handler.Context, _ struct{}) handler.Response {
	c, err := ParseControl(chi.URLParam(ctx.Request(), "control"))
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		doc := newStreamDocument(stream, s.views, s.toastDuration)
		if err := New(doc).Input(c); err != nil {
			return err
		}
		if err := doc.Err(); err != nil {
			return errors.Join(handler.ErrStreamStarted, err)
		}
		return nil
	})
}

// logResult records the outcome and failing control names, never values.
func (s *Service) logResult(ctx context.Context, res Result, err error) {
	if err != nil {
		s.log.WarnContext(ctx, "contact form accepted without toast",
			logger.Component("contact"),
			logger.Event("submit"),
			logger.Error(err),
		)
		return
	}
	if res.Valid() {
		s.log.InfoContext(ctx, "contact form accepted",
			logger.Component("contact"),
			logger.Event("submit"),
		)
		return
	}

	failed := res.Failed()
	names := make([]string, len(failed))
	for i, c := range failed {
		names[i] = c.String()
	}
	s.log.InfoContext(ctx, "contact form rejected",
		logger.Component("contact"),
		logger.Event("submit"),
		logger.Controls(names...),
	)
}
