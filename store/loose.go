package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/zlib"

	"github.com/ahawks/git/internal/trace"
	"github.com/ahawks/git/object"
)

// Loose reads loose objects from a directory laid out as
// <dir>/<first two hex>/<remaining 38 hex>.
type Loose struct {
	dir     string
	logger  *slog.Logger
	objects map[object.ID]object.Handle
	grafts  map[object.ID]*object.Graft
}

// Option configures a Loose store.
type Option func(*Loose)

// WithLogger sets the logger for debug output. If not set, no logging
// is performed.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loose) {
		l.logger = logger
	}
}

// NewLoose creates a store over the given object directory. The
// directory is not touched until an object is read.
func NewLoose(dir string, opts ...Option) *Loose {
	l := &Loose{
		dir:     dir,
		objects: make(map[object.ID]object.Handle),
		grafts:  make(map[object.ID]*object.Graft),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the file path a loose object for id would occupy.
func (l *Loose) Path(id object.ID) string {
	hex := id.String()
	return filepath.Join(l.dir, hex[:2], hex[2:])
}

// ReadObject inflates a loose object file and returns its payload and
// kind. The envelope's declared size must match the payload length.
func (l *Loose) ReadObject(id object.ID) ([]byte, object.Kind, error) {
	op := trace.Begin(context.Background(), l.logger, "fsck.store.read",
		slog.String("object", id.String()))

	payload, kind, err := l.readObject(id)
	op.End(err, slog.String("kind", kind.String()), slog.Int("size", len(payload)))
	return payload, kind, err
}

func (l *Loose) readObject(id object.ID) ([]byte, object.Kind, error) {
	f, err := os.Open(l.Path(id))
	if err != nil {
		return nil, object.KindNone, fmt.Errorf("store: object %s: %w", id, err)
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, object.KindNone, fmt.Errorf("store: object %s: bad deflate stream: %w", id, err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, object.KindNone, fmt.Errorf("store: object %s: inflate: %w", id, err)
	}

	kind, payload, err := splitEnvelope(data)
	if err != nil {
		return nil, object.KindNone, fmt.Errorf("store: object %s: %w", id, err)
	}
	return payload, kind, nil
}

// splitEnvelope parses the "<kind> <size>\0" prefix off an inflated
// object and checks the declared size.
func splitEnvelope(data []byte) (object.Kind, []byte, error) {
	nul := bytes.IndexByte(data, 0)
	if nul < 0 {
		return object.KindNone, nil, fmt.Errorf("store: missing envelope terminator")
	}
	header := data[:nul]
	payload := data[nul+1:]

	sp := bytes.IndexByte(header, ' ')
	if sp < 0 {
		return object.KindNone, nil, fmt.Errorf("store: malformed envelope %q", header)
	}
	kind, ok := object.KindFromBytes(header[:sp])
	if !ok {
		return object.KindNone, nil, fmt.Errorf("store: unknown object kind %q", header[:sp])
	}
	size, err := strconv.ParseUint(string(header[sp+1:]), 10, 63)
	if err != nil {
		return object.KindNone, nil, fmt.Errorf("store: malformed envelope size %q", header[sp+1:])
	}
	if uint64(len(payload)) != size {
		return object.KindNone, nil, fmt.Errorf("store: envelope declares %d bytes, payload has %d", size, len(payload))
	}
	return kind, payload, nil
}

// LookupBlob interns a blob handle for id, or returns nil if the hash
// is already interned as another kind.
func (l *Loose) LookupBlob(id object.ID) *object.Blob {
	if h, ok := l.objects[id]; ok {
		b, _ := h.(*object.Blob)
		return b
	}
	b := &object.Blob{Object: object.Object{ID: id, Kind: object.KindBlob}}
	l.objects[id] = b
	return b
}

// LookupTree interns a tree handle for id, or returns nil if the hash
// is already interned as another kind.
func (l *Loose) LookupTree(id object.ID) *object.Tree {
	if h, ok := l.objects[id]; ok {
		t, _ := h.(*object.Tree)
		return t
	}
	t := &object.Tree{Object: object.Object{ID: id, Kind: object.KindTree}}
	l.objects[id] = t
	return t
}

// LookupCommit interns a commit handle for id, or returns nil if the
// hash is already interned as another kind.
func (l *Loose) LookupCommit(id object.ID) *object.Commit {
	if h, ok := l.objects[id]; ok {
		c, _ := h.(*object.Commit)
		return c
	}
	c := &object.Commit{Object: object.Object{ID: id, Kind: object.KindCommit}}
	l.objects[id] = c
	return c
}

// LookupTag interns a tag handle for id, or returns nil if the hash is
// already interned as another kind.
func (l *Loose) LookupTag(id object.ID) *object.Tag {
	if h, ok := l.objects[id]; ok {
		t, _ := h.(*object.Tag)
		return t
	}
	t := &object.Tag{Object: object.Object{ID: id, Kind: object.KindTag}}
	l.objects[id] = t
	return t
}

// Lookup interns a handle for id as whatever kind its loose file
// declares. Unlike the kind-specific lookups it reads the envelope, so
// it can fail.
func (l *Loose) Lookup(id object.ID) (object.Handle, error) {
	if h, ok := l.objects[id]; ok {
		return h, nil
	}
	_, kind, err := l.ReadObject(id)
	if err != nil {
		return nil, err
	}
	switch kind {
	case object.KindBlob:
		return l.LookupBlob(id), nil
	case object.KindTree:
		return l.LookupTree(id), nil
	case object.KindCommit:
		return l.LookupCommit(id), nil
	case object.KindTag:
		return l.LookupTag(id), nil
	default:
		return nil, fmt.Errorf("store: object %s: unexpected kind %s", id, kind)
	}
}
