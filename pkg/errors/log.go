package errors

import (
	"log"
)

// LogHandler is an ErrorHandler that writes through the standard logger.
type LogHandler struct {
	// Verbose enables measurement reports and stack traces.
	// Soft measurement errors are dropped unless Verbose is set.
	Verbose bool
	// Logger overrides the destination. Nil uses log.Default().
	Logger *log.Logger
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleError logs an AutofitError.
func (h *LogHandler) HandleError(err *AutofitError) {
	if err == nil {
		return
	}
	if err.Kind == KindMeasurement && !h.Verbose {
		return
	}
	l := h.logger()
	l.Printf("[autofit %s] %s: %v", err.Kind, err.Op, err.Err)
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[autofit panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[autofit panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
