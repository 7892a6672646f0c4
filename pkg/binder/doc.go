// Package binder populates request structs from HTTP form data.
//
// Form handles application/x-www-form-urlencoded and multipart/form-data
// bodies and binds values to fields tagged with `form:"name"`:
//
//	type SubmitRequest struct {
//		Email   string   `form:"email"`
//		Consent bool     `form:"consent"` // "on", "true", "1", "yes" are true
//		Tags    []string `form:"tags"`
//		Skip    string   `form:"-"`
//	}
//
// Requests that carry no body at all (GET, HEAD) are reported with
// ErrBinderNotApplicable so callers can chain binders.
package binder
