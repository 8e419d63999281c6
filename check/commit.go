package check

import (
	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

// hashLineAdvance is the stride of a "tree"/"parent" hash line: 40 hex
// characters and the newline.
const hashLineAdvance = object.HexLen + 1

// checkCommit validates a commit payload: the header block, the tree
// line, parent lines checked against the cached parent list (or the
// commit's graft), the author and committer identities, and finally the
// resolvability of the tree itself.
func (c *Checker) checkCommit(cm *object.Commit, data []byte) int {
	buf := data
	if buf == nil {
		buf = cm.Buffer
	}
	obj := &cm.Object

	if code := c.verifyHeaders(obj, buf); code != 0 {
		return -1
	}

	rest, ok := skipPrefix(buf, "tree ")
	if !ok {
		return c.reportf(obj, diag.MISSING_TREE, "invalid format - expected 'tree' line")
	}
	treeID, lineOK := hashLineOK(rest)
	if !lineOK {
		if code := c.reportf(obj, diag.BAD_TREE_SHA1,
			"invalid 'tree' line format - bad sha1"); code != 0 {
			return code
		}
	}
	rest = advance(rest, hashLineAdvance)

	parentLines := 0
	for {
		after, ok := skipPrefix(rest, "parent ")
		if !ok {
			break
		}
		if _, lineOK := hashLineOK(after); !lineOK {
			if code := c.reportf(obj, diag.BAD_PARENT_SHA1,
				"invalid 'parent' line format - bad sha1"); code != 0 {
				return code
			}
		}
		rest = advance(after, hashLineAdvance)
		parentLines++
	}

	parentCount := len(cm.Parents)
	var graft *object.Graft
	if c.store != nil {
		graft = c.store.Graft(obj.ID)
	}
	if graft != nil {
		if graft.ParentCount() == -1 && parentCount == 0 {
			// shallow commit
		} else if graft.ParentCount() != parentCount {
			if code := c.reportf(obj, diag.MISSING_GRAFT, "graft objects missing"); code != 0 {
				return code
			}
		}
	} else if parentCount != parentLines {
		if code := c.reportf(obj, diag.MISSING_PARENT, "parent objects missing"); code != 0 {
			return code
		}
	}

	authorCount := 0
	for {
		after, ok := skipPrefix(rest, "author ")
		if !ok {
			break
		}
		authorCount++
		code, after := c.checkIdent(obj, after)
		if code != 0 {
			return code
		}
		rest = after
	}
	var code int
	if authorCount < 1 {
		code = c.reportf(obj, diag.MISSING_AUTHOR, "invalid format - expected 'author' line")
	} else if authorCount > 1 {
		code = c.reportf(obj, diag.MULTIPLE_AUTHORS, "invalid format - multiple 'author' lines")
	}
	if code != 0 {
		return code
	}

	after, ok := skipPrefix(rest, "committer ")
	if !ok {
		return c.reportf(obj, diag.MISSING_COMMITTER, "invalid format - expected 'committer' line")
	}
	if code, _ := c.checkIdent(obj, after); code != 0 {
		return code
	}

	if cm.Tree == nil {
		return c.reportf(obj, diag.BAD_TREE, "could not load commit's tree %s", treeID)
	}
	return 0
}
