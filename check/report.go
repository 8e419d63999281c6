package check

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/internal/trace"
	"github.com/ahawks/git/object"
)

// ReportFunc consumes one formatted diagnostic. obj is the object the
// finding is about and may be nil when no valid object was available.
// severity is always Error or Warn by the time a report is delivered.
// The return value is accumulated into the validator's result; the stock
// callback returns 1 for Error and 0 for Warn so validators tally
// errors.
type ReportFunc func(obj *object.Object, severity diag.Severity, message string) int

// reportf resolves policy for one diagnostic and, if it survives,
// formats and delivers it.
//
// Message framing is "<name>: <text>" where name is the diagnostic's
// user-facing camel form.
func (c *Checker) reportf(obj *object.Object, id diag.ID, format string, args ...any) int {
	sev := c.severityOf(id)
	switch sev {
	case diag.Ignore:
		return 0
	case diag.Info:
		// Info diagnostics are advisory history; they surface only when
		// configuration elevates them.
		return 0
	}
	if obj != nil && c.skip.contains(obj.ID) {
		return 0
	}
	if sev == diag.Fatal {
		sev = diag.Error
	}
	msg := id.Camel() + ": " + fmt.Sprintf(format, args...)
	return c.report(obj, sev, msg)
}

// StandardReport returns the stock diagnostic callback: it prints
// "object <hex>: <message>" on the logger's warn or error channel and
// returns 1 for Error and 0 for Warn, so summed returns count errors.
// A nil logger keeps the counting behavior and prints nothing.
func StandardReport(logger *slog.Logger) ReportFunc {
	return func(obj *object.Object, severity diag.Severity, message string) int {
		name := "unknown"
		if obj != nil {
			name = obj.ID.String()
		}
		line := fmt.Sprintf("object %s: %s", name, message)
		if severity == diag.Error {
			trace.Error(context.Background(), logger, line)
			return 1
		}
		trace.Warn(context.Background(), logger, line)
		return 0
	}
}
