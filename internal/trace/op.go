package trace

import (
	"context"
	"log/slog"
	"time"
)

// Op brackets an operation so its start, outcome, and duration are logged
// together. Create via [Begin]; methods are safe on a nil *Op.
type Op struct {
	ctx    context.Context //nolint:containedctx // held to stamp request id and cancellation at End
	logger *slog.Logger
	name   string
	start  time.Time
	ended  bool
}

// Begin starts an operation and logs it at Debug level. Returns nil when
// logging is disabled so the whole mechanism costs one nil check.
//
// Operation names follow fsck.<package>.<operation>, e.g. fsck.check.object.
func Begin(ctx context.Context, logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}
	op := &Op{ctx: ctx, logger: logger, name: name, start: time.Now()}

	logAttrs := make([]slog.Attr, 0, len(attrs)+2)
	logAttrs = append(logAttrs, slog.String("op", name))
	if id, ok := RequestIDFrom(ctx); ok {
		logAttrs = append(logAttrs, slog.String("request_id", id))
	}
	logAttrs = append(logAttrs, attrs...)
	logger.LogAttrs(ctx, slog.LevelDebug, "operation started", logAttrs...)
	return op
}

// End logs the operation completion at Debug level. Only the first call
// logs; repeated calls (explicit plus deferred) are ignored.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil || o.ended {
		return
	}
	o.ended = true

	elapsed := time.Since(o.start)
	logAttrs := make([]slog.Attr, 0, len(attrs)+5)
	logAttrs = append(logAttrs, slog.String("op", o.name))
	if id, ok := RequestIDFrom(o.ctx); ok {
		logAttrs = append(logAttrs, slog.String("request_id", id))
	}
	logAttrs = append(logAttrs, slog.Duration("duration", elapsed))
	if ctxErr := o.ctx.Err(); ctxErr != nil {
		logAttrs = append(logAttrs, slog.String("ctx_err", ctxErr.Error()))
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	logAttrs = append(logAttrs, attrs...)
	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "operation ended", logAttrs...)
}
