package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")

	// ErrBinderNotApplicable signals that the request has nothing for this binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
