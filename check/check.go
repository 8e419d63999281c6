package check

import (
	"context"
	"log/slog"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/internal/trace"
	"github.com/ahawks/git/object"
)

// Object validates one object's canonical serialization, dispatching on
// its concrete type. data is the raw payload; pass nil to use the
// object's cached buffer (commits, trees) or to load it from the store
// (tags). Blobs always pass without byte inspection.
//
// The return value follows the package's sign protocol: negative for a
// structural failure, zero for clean, positive for the summed report
// codes of delivered diagnostics.
func (c *Checker) Object(obj object.Handle, data []byte) int {
	if obj == nil {
		return c.reportf(nil, diag.BAD_OBJECT_SHA1, "no valid object to check")
	}

	op := trace.Begin(context.Background(), c.logger, "fsck.check.object",
		slog.String("object", obj.Header().ID.String()),
		slog.String("kind", obj.Header().Kind.String()),
	)

	var code int
	switch v := obj.(type) {
	case *object.Blob:
		code = 0
	case *object.Tree:
		code = c.checkTree(v, data)
	case *object.Commit:
		code = c.checkCommit(v, data)
	case *object.Tag:
		code = c.checkTag(v, data)
	default:
		code = c.reportf(obj.Header(), diag.UNKNOWN_TYPE,
			"unknown type '%d' (internal fsck error)", obj.Header().Kind)
	}
	op.End(nil, slog.Int("code", code))
	return code
}
