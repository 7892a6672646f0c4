// Package handler provides type-safe HTTP handlers with DataStar support.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap adapts it to http.HandlerFunc, running the configured
// binders first and routing every failure through an ErrorHandler:
//
//	h := handler.HandlerFunc[handler.Context, SubmitRequest](
//		func(ctx handler.Context, req SubmitRequest) handler.Response {
//			return handler.Templ(views.Form(req))
//		},
//	)
//	r.Post("/", handler.Wrap(h, handler.WithBinders[handler.Context, SubmitRequest](binder.Form())))
//
// Templ responses render full HTML for regular requests and element patches
// for DataStar requests. SSE runs a long-lived stream handler that pushes
// components, signals and scripts through a StreamContext.
//
// Errors:
//
//	handler.ErrBadRequest // 400 with key "bad_request"
//	handler.ErrNotFound   // 404 with key "not_found"
//	handler.NewHTTPError(http.StatusTeapot, "teapot")
package handler
