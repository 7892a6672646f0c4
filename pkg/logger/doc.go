// Package logger provides a context-aware wrapper around Go's slog package
// with functional options, helper attribute constructors, and transparent
// injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - output format (text or json) and minimum level
//   - static slog.Attr values applied to every record
//   - ContextExtractor callbacks that add attributes pulled from the context
//     of each record, for example a request id
//   - an optional rotating log file next to the primary output
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "contactform"),
//		logger.WithContextExtractors(requestIDExtractor),
//		logger.WithFile(logger.FileConfig{Path: "/var/log/contactform.log"}),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "form submitted",
//		logger.Component("contact"),
//		logger.Event("submit"),
//	)
package logger
