package object

import (
	"bytes"
	"errors"
)

// ErrBadTreeEntry is returned by [EntryIter.Err] when the remaining
// buffer cannot be parsed as a tree entry.
var ErrBadTreeEntry = errors.New("object: malformed tree entry")

// Entry is one (mode, name, hash) triple within a tree payload.
//
// RawMode is the octal mode field exactly as serialized, before decoding;
// the checker inspects it for zero padding. Name aliases the tree buffer
// and must not be modified.
type Entry struct {
	RawMode []byte
	Mode    uint32
	Name    []byte
	ID      ID
}

// IsDir reports whether the entry names a subtree.
func (e Entry) IsDir() bool {
	return IsDirMode(e.Mode)
}

// IsGitlink reports whether the entry is a submodule link.
func (e Entry) IsGitlink() bool {
	return IsGitlinkMode(e.Mode)
}

// EntryIter walks the entries of a canonical tree payload in serialized
// order. A malformed entry stops iteration; check [EntryIter.Err] after
// Next reports false.
//
//	it := object.NewEntryIter(tree.Buffer)
//	for {
//		entry, ok := it.Next()
//		if !ok {
//			break
//		}
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type EntryIter struct {
	rest []byte
	err  error
}

// NewEntryIter returns an iterator over the entries serialized in buf.
func NewEntryIter(buf []byte) *EntryIter {
	return &EntryIter{rest: buf}
}

// Next returns the next entry. It reports false at the end of the buffer
// or on a malformed entry; the two cases are distinguished by Err.
func (it *EntryIter) Next() (Entry, bool) {
	if it.err != nil || len(it.rest) == 0 {
		return Entry{}, false
	}

	sp := bytes.IndexByte(it.rest, ' ')
	if sp <= 0 {
		it.err = ErrBadTreeEntry
		return Entry{}, false
	}
	rawMode := it.rest[:sp]
	mode, ok := parseOctal(rawMode)
	if !ok {
		it.err = ErrBadTreeEntry
		return Entry{}, false
	}

	after := it.rest[sp+1:]
	nul := bytes.IndexByte(after, 0)
	if nul < 0 || len(after) < nul+1+IDLen {
		it.err = ErrBadTreeEntry
		return Entry{}, false
	}

	var id ID
	copy(id[:], after[nul+1:nul+1+IDLen])
	entry := Entry{
		RawMode: rawMode,
		Mode:    mode,
		Name:    after[:nul],
		ID:      id,
	}
	it.rest = after[nul+1+IDLen:]
	return entry, true
}

// Err returns the parse error that stopped iteration, or nil if the
// buffer was consumed cleanly.
func (it *EntryIter) Err() error {
	return it.err
}

func parseOctal(b []byte) (uint32, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var v uint32
	for _, c := range b {
		if c < '0' || c > '7' {
			return 0, false
		}
		if v > (1<<32-1)/8 {
			return 0, false
		}
		v = v*8 + uint32(c-'0')
	}
	return v, true
}
