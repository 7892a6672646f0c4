// Package contact serves a single contact form and validates it on the server.
//
// Validate is a pure function from FormState to Result. FormValidator applies
// a Result to a Document: it shows and hides inline error nodes, toggles
// aria-invalid on the text fields, moves focus to the first failing control
// and drives the success toast, which hides itself a fixed delay after every
// show.
//
// Two documents are provided. Page is an in-memory rendition used by the
// no-JavaScript fallback and by tests. The stream document turns every
// mutation into a DataStar patch on an open SSE response.
//
// Service mounts the HTTP routes:
//
//	svc := contact.NewService(contact.WithLogger(log))
//	r.Mount("/", svc.Handle())
package contact
