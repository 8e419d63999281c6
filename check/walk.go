package check

import (
	"context"
	"log/slog"

	"github.com/ahawks/git/internal/trace"
	"github.com/ahawks/git/object"
)

// WalkFunc visits one direct reference of a walked object. obj is the
// interned handle's header and may be nil when the referenced hash is
// already interned as a conflicting kind; expect is the kind the
// reference declares, or KindAny for a tag's target.
//
// A negative return aborts the walk immediately and is propagated; the
// first positive return is remembered and returned once the remaining
// references have been visited.
type WalkFunc func(obj *object.Object, expect object.Kind) int

// Walk enumerates the objects obj directly references, invoking the
// configured walk callback once per reference: nothing for a blob, the
// tree then each parent in order for a commit, each non-submodule entry
// for a tree, and the tagged object for a tag.
//
// Returns -1 when obj is nil, no walk callback is configured, or a tree,
// commit, or tag has no store to parse it from or cannot be parsed.
func (c *Checker) Walk(obj object.Handle) int {
	if obj == nil || c.walk == nil {
		return -1
	}

	op := trace.Begin(context.Background(), c.logger, "fsck.check.walk",
		slog.String("object", obj.Header().ID.String()),
		slog.String("kind", obj.Header().Kind.String()),
	)

	var code int
	switch v := obj.(type) {
	case *object.Blob:
		code = 0
	case *object.Tree:
		code = c.walkTree(v)
	case *object.Commit:
		code = c.walkCommit(v)
	case *object.Tag:
		code = c.walkTag(v)
	default:
		trace.Error(context.Background(), c.logger, "unknown object type",
			slog.String("object", obj.Header().ID.String()))
		code = -1
	}
	op.End(nil, slog.Int("code", code))
	return code
}

func (c *Checker) walkTree(t *object.Tree) int {
	if c.store == nil {
		return -1
	}
	if err := c.store.ParseTree(t); err != nil {
		return -1
	}

	res := 0
	it := object.NewEntryIter(t.Buffer)
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		if entry.IsGitlink() {
			// Submodule links live in another repository.
			continue
		}

		var result int
		switch {
		case entry.IsDir():
			result = c.walk(headerOf(c.store.LookupTree(entry.ID)), object.KindTree)
		case object.IsRegularMode(entry.Mode) || object.IsSymlinkMode(entry.Mode):
			result = c.walk(headerOfBlob(c.store.LookupBlob(entry.ID)), object.KindBlob)
		default:
			trace.Error(context.Background(), c.logger, "tree entry has bad mode",
				slog.String("tree", t.ID.String()),
				slog.String("entry", string(entry.Name)),
				slog.String("mode", octal(entry.Mode)),
			)
			result = -1
		}
		if result < 0 {
			return result
		}
		if res == 0 {
			res = result
		}
	}
	if it.Err() != nil {
		return -1
	}
	return res
}

func (c *Checker) walkCommit(cm *object.Commit) int {
	if c.store == nil {
		return -1
	}
	if err := c.store.ParseCommit(cm); err != nil {
		return -1
	}

	result := c.walk(headerOf(cm.Tree), object.KindTree)
	if result < 0 {
		return result
	}
	res := result

	for _, parent := range cm.Parents {
		result = c.walk(&parent.Object, object.KindCommit)
		if result < 0 {
			return result
		}
		if res == 0 {
			res = result
		}
	}
	return res
}

func (c *Checker) walkTag(t *object.Tag) int {
	if c.store == nil {
		return -1
	}
	if err := c.store.ParseTag(t); err != nil {
		return -1
	}
	return c.walk(t.Tagged, object.KindAny)
}

// headerOf lifts a possibly-nil tree handle to its possibly-nil header
// without tripping over a typed nil.
func headerOf(t *object.Tree) *object.Object {
	if t == nil {
		return nil
	}
	return &t.Object
}

func headerOfBlob(b *object.Blob) *object.Object {
	if b == nil {
		return nil
	}
	return &b.Object
}

func octal(mode uint32) string {
	if mode == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for mode > 0 {
		i--
		buf[i] = byte('0' + mode&7)
		mode >>= 3
	}
	return string(buf[i:])
}
