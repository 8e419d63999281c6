package check

import (
	"bytes"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

const (
	treeOrdered   = 0
	treeUnordered = -1
	treeHasDups   = -2
)

// verifyOrdered compares two adjacent tree entries under the canonical
// order: names compare bytewise, with a directory entry compared as if
// its name ended in '/'. Identical names are duplicates however the
// modes compare; directory trees have one namespace.
func verifyOrdered(prevMode uint32, prevName []byte, mode uint32, name []byte) int {
	n := min(len(prevName), len(name))
	if cmp := bytes.Compare(prevName[:n], name[:n]); cmp != 0 {
		if cmp < 0 {
			return treeOrdered
		}
		return treeUnordered
	}

	var c1, c2 byte
	if n < len(prevName) {
		c1 = prevName[n]
	}
	if n < len(name) {
		c2 = name[n]
	}
	if c1 == 0 && c2 == 0 {
		return treeHasDups
	}
	if c1 == 0 && object.IsDirMode(prevMode) {
		c1 = '/'
	}
	if c2 == 0 && object.IsDirMode(mode) {
		c2 = '/'
	}
	if c1 < c2 {
		return treeOrdered
	}
	return treeUnordered
}

// checkTree scans every entry of a tree payload, accumulating one flag
// per diagnostic class, then reports each class that fired once. A
// payload that cannot be parsed as a tree aborts with -1 before any
// reporting.
func (c *Checker) checkTree(t *object.Tree, data []byte) int {
	buf := data
	if buf == nil {
		buf = t.Buffer
	}

	var (
		hasNullSHA1       bool
		hasFullPath       bool
		hasEmptyName      bool
		hasDot            bool
		hasDotDot         bool
		hasDotGit         bool
		hasZeroPad        bool
		hasBadModes       bool
		hasDupEntries     bool
		notProperlySorted bool
	)

	var prevMode uint32
	var prevName []byte
	havePrev := false

	it := object.NewEntryIter(buf)
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		name := string(entry.Name)

		hasNullSHA1 = hasNullSHA1 || entry.ID.IsZero()
		hasFullPath = hasFullPath || bytes.IndexByte(entry.Name, '/') >= 0
		hasEmptyName = hasEmptyName || len(entry.Name) == 0
		hasDot = hasDot || name == "."
		hasDotDot = hasDotDot || name == ".."
		hasDotGit = hasDotGit || name == ".git" ||
			(c.hfsDotGit != nil && c.hfsDotGit(name)) ||
			(c.ntfsDotGit != nil && c.ntfsDotGit(name))
		hasZeroPad = hasZeroPad || entry.RawMode[0] == '0'

		switch entry.Mode {
		case object.ModeExecutable,
			object.ModeRegular,
			object.ModeSymlink,
			object.ModeDir,
			object.ModeGitlink:
		case object.ModeGroupWrite:
			// Tolerated legacy mode from before permission bits were
			// normalized, unless strict.
			if c.strict {
				hasBadModes = true
			}
		default:
			hasBadModes = true
		}

		if havePrev {
			switch verifyOrdered(prevMode, prevName, entry.Mode, entry.Name) {
			case treeUnordered:
				notProperlySorted = true
			case treeHasDups:
				hasDupEntries = true
			}
		}
		prevMode = entry.Mode
		prevName = entry.Name
		havePrev = true
	}
	if it.Err() != nil {
		return -1
	}

	obj := &t.Object
	retval := 0
	if hasNullSHA1 {
		retval += c.reportf(obj, diag.NULL_SHA1, "contains entries pointing to null sha1")
	}
	if hasFullPath {
		retval += c.reportf(obj, diag.FULL_PATHNAME, "contains full pathnames")
	}
	if hasEmptyName {
		retval += c.reportf(obj, diag.EMPTY_NAME, "contains empty pathname")
	}
	if hasDot {
		retval += c.reportf(obj, diag.HAS_DOT, "contains '.'")
	}
	if hasDotDot {
		retval += c.reportf(obj, diag.HAS_DOTDOT, "contains '..'")
	}
	if hasDotGit {
		retval += c.reportf(obj, diag.HAS_DOTGIT, "contains '.git'")
	}
	if hasZeroPad {
		retval += c.reportf(obj, diag.ZERO_PADDED_FILEMODE, "contains zero-padded file modes")
	}
	if hasBadModes {
		retval += c.reportf(obj, diag.BAD_FILEMODE, "contains bad file modes")
	}
	if hasDupEntries {
		retval += c.reportf(obj, diag.DUPLICATE_ENTRIES, "contains duplicate file entries")
	}
	if notProperlySorted {
		retval += c.reportf(obj, diag.TREE_NOT_SORTED, "not properly sorted")
	}
	return retval
}
