package contact_test

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type templComponent = templ.Component

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}
