// Package logger wraps Go's slog package with functional options for
// configuration and helper attribute constructors.
//
// A single factory, New, creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static attributes,
// and the output writer. The default writer is stderr because stdout is the
// protocol channel of this program and must stay clean.
//
// Helper constructors such as Error, SessionID, and Capacity live in attr.go
// and keep attribute naming consistent across the codebase. Error and Errors
// produce attributes only when the supplied error is non-nil, allowing calls
// like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(slog.String("service", "cacheline")),
//	)
//	logger.SetAsDefault(log)
package logger
