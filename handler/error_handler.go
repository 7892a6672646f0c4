package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the body for regular requests. Plain text when nil.
	ErrorPage func(ErrorPageParams) templ.Component
}

// classifyError maps err to a status code and a public message.
func classifyError(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	return http.StatusInternalServerError, ErrInternal.Key
}

// NewErrorHandler creates an error handler that logs every failure.
// Client errors are logged at warn level, everything else at error.
// DataStar requests get the status code only, since patches may already
// have been streamed.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, message := classifyError(err)
		requestID := requestid.FromContext(r.Context())

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		if errors.Is(err, ErrStreamStarted) {
			return
		}

		if cfg.ErrorPage == nil || IsDataStar(r) {
			http.Error(ctx.ResponseWriter(), message, status)
			return
		}

		resp := TemplWithStatus(status, cfg.ErrorPage(ErrorPageParams{
			Error:      message,
			StatusCode: status,
			RequestID:  requestID,
		}))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page",
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
		}
	}
}
