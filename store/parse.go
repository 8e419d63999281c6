package store

import (
	"bytes"
	"fmt"

	"github.com/ahawks/git/object"
)

// ParseTree resolves the tree's payload into its buffer. A no-op for an
// already-parsed tree.
func (l *Loose) ParseTree(t *object.Tree) error {
	if t.Parsed() {
		return nil
	}
	payload, kind, err := l.ReadObject(t.ID)
	if err != nil {
		return err
	}
	if kind != object.KindTree {
		return fmt.Errorf("store: object %s is a %s, not a tree", t.ID, kind)
	}
	t.Buffer = payload
	return nil
}

// ParseCommit resolves the commit's payload and populates its cached
// tree pointer and parent list. A graft for the commit replaces the
// declared parents: a shallow graft clears them, any other graft
// substitutes its own.
//
// A declared tree or parent hash that is interned as a conflicting kind
// resolves to nothing rather than failing; the consistency checker
// inspects the resulting gaps. A payload too malformed to locate those
// hashes at all is an error.
func (l *Loose) ParseCommit(c *object.Commit) error {
	if c.Buffer != nil {
		return nil
	}
	payload, kind, err := l.ReadObject(c.ID)
	if err != nil {
		return err
	}
	if kind != object.KindCommit {
		return fmt.Errorf("store: object %s is a %s, not a commit", c.ID, kind)
	}

	rest, ok := bytes.CutPrefix(payload, []byte("tree "))
	if !ok {
		return fmt.Errorf("store: commit %s: missing tree line", c.ID)
	}
	treeID, ok := hashLine(rest)
	if !ok {
		return fmt.Errorf("store: commit %s: bad tree hash", c.ID)
	}
	c.Tree = l.LookupTree(treeID)
	rest = rest[object.HexLen+1:]

	var parentIDs []object.ID
	for {
		after, ok := bytes.CutPrefix(rest, []byte("parent "))
		if !ok {
			break
		}
		parentID, ok := hashLine(after)
		if !ok {
			return fmt.Errorf("store: commit %s: bad parent hash", c.ID)
		}
		parentIDs = append(parentIDs, parentID)
		rest = after[object.HexLen+1:]
	}

	if g := l.Graft(c.ID); g != nil {
		if g.Shallow {
			parentIDs = nil
		} else {
			parentIDs = g.Parents
		}
	}

	c.Parents = nil
	for _, id := range parentIDs {
		if p := l.LookupCommit(id); p != nil {
			c.Parents = append(c.Parents, p)
		}
	}
	c.Buffer = payload
	return nil
}

// ParseTag resolves the tag's payload and populates its tagged-object
// handle and name. A target interned as a conflicting kind, or a "type"
// value naming no kind, leaves Tagged nil for the checker to flag.
func (l *Loose) ParseTag(t *object.Tag) error {
	if t.Buffer != nil {
		return nil
	}
	payload, kind, err := l.ReadObject(t.ID)
	if err != nil {
		return err
	}
	if kind != object.KindTag {
		return fmt.Errorf("store: object %s is a %s, not a tag", t.ID, kind)
	}

	rest, ok := bytes.CutPrefix(payload, []byte("object "))
	if !ok {
		return fmt.Errorf("store: tag %s: missing object line", t.ID)
	}
	targetID, ok := hashLine(rest)
	if !ok {
		return fmt.Errorf("store: tag %s: bad object hash", t.ID)
	}
	rest = rest[object.HexLen+1:]

	typeLine, ok := bytes.CutPrefix(rest, []byte("type "))
	if !ok {
		return fmt.Errorf("store: tag %s: missing type line", t.ID)
	}
	nl := bytes.IndexByte(typeLine, '\n')
	if nl < 0 {
		return fmt.Errorf("store: tag %s: unterminated type line", t.ID)
	}
	targetKind, _ := object.KindFromBytes(typeLine[:nl])
	rest = typeLine[nl+1:]

	if nameLine, ok := bytes.CutPrefix(rest, []byte("tag ")); ok {
		if nl := bytes.IndexByte(nameLine, '\n'); nl >= 0 {
			t.Name = string(nameLine[:nl])
		}
	}

	switch targetKind {
	case object.KindBlob:
		if b := l.LookupBlob(targetID); b != nil {
			t.Tagged = &b.Object
		}
	case object.KindTree:
		if tr := l.LookupTree(targetID); tr != nil {
			t.Tagged = &tr.Object
		}
	case object.KindCommit:
		if c := l.LookupCommit(targetID); c != nil {
			t.Tagged = &c.Object
		}
	case object.KindTag:
		if inner := l.LookupTag(targetID); inner != nil {
			t.Tagged = &inner.Object
		}
	}
	t.Buffer = payload
	return nil
}

// hashLine decodes a 40-hex hash terminated by a newline at the front
// of buf.
func hashLine(buf []byte) (object.ID, bool) {
	id, ok := object.ParseHex(buf)
	if !ok || len(buf) <= object.HexLen || buf[object.HexLen] != '\n' {
		return id, false
	}
	return id, true
}
