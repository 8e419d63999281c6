package object

// Object is the header shared by all concrete object types: the identity
// hash and the kind. Concrete types embed it, so a *Commit, *Tree, *Blob,
// or *Tag can be passed wherever a [Handle] is accepted.
type Object struct {
	ID   ID
	Kind Kind
}

// Header returns the embedded object header. It makes every concrete
// object type satisfy [Handle].
func (o *Object) Header() *Object {
	return o
}

// Handle is any value carrying an object header. The check package
// dispatches on the dynamic type behind a Handle.
type Handle interface {
	Header() *Object
}

// Blob is an opaque file-content object. Blobs carry no structure the
// checker inspects.
type Blob struct {
	Object
}

// Tree is a directory object. Buffer holds the canonical entry
// concatenation once the tree has been parsed; a nil Buffer means the
// payload has not been resolved yet.
type Tree struct {
	Object
	Buffer []byte
}

// Parsed reports whether the tree payload has been resolved.
func (t *Tree) Parsed() bool {
	return t.Buffer != nil
}

// Commit is a commit object. Tree and Parents are populated by
// [Store.ParseCommit]; a nil Tree after parsing means the store could not
// resolve the declared tree hash to a tree handle. Buffer caches the
// canonical payload for validators that re-scan it.
type Commit struct {
	Object
	Tree    *Tree
	Parents []*Commit
	Buffer  []byte
}

// Tag is an annotated tag object. Tagged is the handle of the object the
// tag points at, populated by [Store.ParseTag]; nil means the declared
// target could not be resolved. Name is the literal "tag" line value.
type Tag struct {
	Object
	Tagged *Object
	Name   string
	Buffer []byte
}
