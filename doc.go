// Package git provides consistency checking for a content-addressed
// object store whose objects are blobs, trees, commits, and tags, each
// identified by a 20-byte hash of its canonical serialization.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - diag: The diagnostic catalog — identifiers and default severities
//	  - object: The data model — hashes, kinds, objects, tree entries
//
//	Core tier:
//	  - check: Format validators, diagnostic policy, reference walker
//
//	Store tier:
//	  - store: Loose-object reading, handle interning, graft loading
//
// # Entry Points
//
// Checking a parsed object:
//
//	import "github.com/ahawks/git/check"
//
//	c := check.New(objects, check.WithStrict(true))
//	if err := c.ApplyConfig(os.Getenv("FSCK_CONFIG")); err != nil {
//	    // configuration error
//	}
//	n := c.Object(commit, nil) // n > 0: diagnostics delivered; n < 0: unparseable
//
// Walking references:
//
//	c := check.New(objects, check.WithWalk(func(ref *object.Object, expect object.Kind) int {
//	    queue(ref)
//	    return 0
//	}))
//	c.Walk(commit)
//
// The cmd/gitfsck command wires a loose-object store to the checker.
package git
