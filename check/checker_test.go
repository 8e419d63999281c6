package check

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

// testReport is one diagnostic captured by recordingReport.
type testReport struct {
	obj      *object.Object
	severity diag.Severity
	message  string
}

// recordingReport captures diagnostics and mimics the stock callback's
// return protocol: 1 per error, 0 per warning.
func recordingReport(got *[]testReport) ReportFunc {
	return func(obj *object.Object, severity diag.Severity, message string) int {
		*got = append(*got, testReport{obj: obj, severity: severity, message: message})
		if severity == diag.Error {
			return 1
		}
		return 0
	}
}

// messagePrefixes extracts the camel-name prefix of each captured
// message for compact assertions.
func messagePrefixes(reports []testReport) []string {
	var out []string
	for _, r := range reports {
		name, _, _ := strings.Cut(r.message, ":")
		out = append(out, name)
	}
	return out
}

// testID builds a recognizable ID from a single byte.
func testID(b byte) object.ID {
	var id object.ID
	for i := range id {
		id[i] = b
	}
	return id
}

// memPayload is one stored object in a memStore.
type memPayload struct {
	data []byte
	kind object.Kind
}

// memStore is an in-memory object.Store for checker tests.
type memStore struct {
	payloads map[object.ID]memPayload
	objects  map[object.ID]object.Handle
	grafts   map[object.ID]*object.Graft
}

func newMemStore() *memStore {
	return &memStore{
		payloads: make(map[object.ID]memPayload),
		objects:  make(map[object.ID]object.Handle),
		grafts:   make(map[object.ID]*object.Graft),
	}
}

func (s *memStore) put(id object.ID, kind object.Kind, data []byte) {
	s.payloads[id] = memPayload{data: data, kind: kind}
}

func (s *memStore) ReadObject(id object.ID) ([]byte, object.Kind, error) {
	p, ok := s.payloads[id]
	if !ok {
		return nil, object.KindNone, fmt.Errorf("memStore: no object %s", id)
	}
	return p.data, p.kind, nil
}

func (s *memStore) LookupBlob(id object.ID) *object.Blob {
	if h, ok := s.objects[id]; ok {
		b, _ := h.(*object.Blob)
		return b
	}
	b := &object.Blob{Object: object.Object{ID: id, Kind: object.KindBlob}}
	s.objects[id] = b
	return b
}

func (s *memStore) LookupTree(id object.ID) *object.Tree {
	if h, ok := s.objects[id]; ok {
		t, _ := h.(*object.Tree)
		return t
	}
	t := &object.Tree{Object: object.Object{ID: id, Kind: object.KindTree}}
	s.objects[id] = t
	return t
}

func (s *memStore) LookupCommit(id object.ID) *object.Commit {
	if h, ok := s.objects[id]; ok {
		c, _ := h.(*object.Commit)
		return c
	}
	c := &object.Commit{Object: object.Object{ID: id, Kind: object.KindCommit}}
	s.objects[id] = c
	return c
}

func (s *memStore) LookupTag(id object.ID) *object.Tag {
	if h, ok := s.objects[id]; ok {
		t, _ := h.(*object.Tag)
		return t
	}
	t := &object.Tag{Object: object.Object{ID: id, Kind: object.KindTag}}
	s.objects[id] = t
	return t
}

func (s *memStore) ParseTree(t *object.Tree) error {
	if t.Parsed() {
		return nil
	}
	data, kind, err := s.ReadObject(t.ID)
	if err != nil {
		return err
	}
	if kind != object.KindTree {
		return fmt.Errorf("memStore: %s is not a tree", t.ID)
	}
	t.Buffer = data
	return nil
}

func (s *memStore) ParseCommit(c *object.Commit) error {
	if c.Buffer != nil {
		return nil
	}
	data, kind, err := s.ReadObject(c.ID)
	if err != nil {
		return err
	}
	if kind != object.KindCommit {
		return fmt.Errorf("memStore: %s is not a commit", c.ID)
	}

	rest, ok := bytes.CutPrefix(data, []byte("tree "))
	if !ok {
		return fmt.Errorf("memStore: commit %s: missing tree line", c.ID)
	}
	treeID, ok := object.ParseHex(rest)
	if !ok {
		return fmt.Errorf("memStore: commit %s: bad tree hash", c.ID)
	}
	c.Tree = s.LookupTree(treeID)
	rest = rest[object.HexLen+1:]

	for {
		after, ok := bytes.CutPrefix(rest, []byte("parent "))
		if !ok {
			break
		}
		parentID, ok := object.ParseHex(after)
		if !ok {
			return fmt.Errorf("memStore: commit %s: bad parent hash", c.ID)
		}
		if p := s.LookupCommit(parentID); p != nil {
			c.Parents = append(c.Parents, p)
		}
		rest = after[object.HexLen+1:]
	}
	c.Buffer = data
	return nil
}

func (s *memStore) ParseTag(t *object.Tag) error {
	if t.Buffer != nil {
		return nil
	}
	data, kind, err := s.ReadObject(t.ID)
	if err != nil {
		return err
	}
	if kind != object.KindTag {
		return fmt.Errorf("memStore: %s is not a tag", t.ID)
	}
	t.Buffer = data
	return nil
}

func (s *memStore) Graft(id object.ID) *object.Graft {
	return s.grafts[id]
}
