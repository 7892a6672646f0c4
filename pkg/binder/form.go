package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms.
const DefaultMaxMemory = 1 << 20 // 1 MB

// Form returns a binder for urlencoded and multipart form bodies.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.ContentLength == 0 {
				return ErrBinderNotApplicable
			}
			return fmt.Errorf("%w: missing content type", ErrUnsupportedMediaType)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return errors.Join(ErrInvalidForm, err)
		}

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing multipart boundary", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, mediaType)
		}

		return bindValues(v, "form", values)
	}
}
