package errors

import "github.com/go-drift/shadcn/pkg/logging"

// LogHandler is an ErrorHandler that writes to the process logger.
type LogHandler struct {
	// Verbose adds stack traces to panic reports.
	Verbose bool
}

// HandleError logs err at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	ev := logging.L().Error().Str("op", err.Op).Str("kind", err.Kind.String()).Err(err.Err)
	if err.Path != "" {
		ev = ev.Str("path", err.Path)
	}
	ev.Msg("error")
}

// HandlePanic logs a recovered panic at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := logging.L().Error().Str("op", err.Op).Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
