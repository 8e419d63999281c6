package diag

import (
	"strings"
	"sync"
)

// ID is a stable identifier for one diagnostic in the catalog.
//
// The zero ID is invalid. IDs use unexported fields to enforce a closed
// set; only the identifiers defined in this package exist.
type ID struct {
	name string
	def  Severity
}

// Name returns the stable UPPER_SNAKE symbolic name.
func (id ID) Name() string {
	return id.name
}

// Default returns the catalog default severity.
func (id ID) Default() Severity {
	return id.def
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.name == ""
}

// String returns the symbolic name.
func (id ID) String() string {
	return id.name
}

// Camel returns the user-facing form of the name: letters lowercased,
// each underscore dropped with the byte that followed it kept exactly
// as-is, so BAD_DATE renders as badDate. User tooling matches on this
// form; it is a compatibility requirement, not a style choice.
func (id ID) Camel() string {
	var sb strings.Builder
	sb.Grow(len(id.name))
	for i := 0; i < len(id.name); i++ {
		c := id.name[i]
		if c == '_' {
			i++
			if i < len(id.name) {
				sb.WriteByte(id.name[i])
			}
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// msg is the unexported constructor; callers cannot create arbitrary IDs.
func msg(name string, def Severity) ID {
	return ID{name: name, def: def}
}

// Fatal diagnostics. These abort parsing of the object that raised them.
var (
	// NUL_IN_HEADER indicates a NUL byte inside a commit or tag header block.
	NUL_IN_HEADER = msg("NUL_IN_HEADER", Fatal)

	// UNTERMINATED_HEADER indicates a header block with no terminating blank
	// line and no trailing newline.
	UNTERMINATED_HEADER = msg("UNTERMINATED_HEADER", Fatal)
)

// Error diagnostics.
var (
	// BAD_DATE indicates an identity line whose epoch does not parse.
	BAD_DATE = msg("BAD_DATE", Error)

	// BAD_DATE_OVERFLOW indicates an identity epoch outside the supported
	// time range.
	BAD_DATE_OVERFLOW = msg("BAD_DATE_OVERFLOW", Error)

	// BAD_EMAIL indicates an identity email segment not closed by '>'.
	BAD_EMAIL = msg("BAD_EMAIL", Error)

	// BAD_NAME indicates an identity name segment containing '>' before '<'.
	BAD_NAME = msg("BAD_NAME", Error)

	// BAD_OBJECT_SHA1 indicates a malformed hash on a tag "object" line, or
	// a check invoked without a valid object.
	BAD_OBJECT_SHA1 = msg("BAD_OBJECT_SHA1", Error)

	// BAD_PARENT_SHA1 indicates a malformed hash on a commit "parent" line.
	BAD_PARENT_SHA1 = msg("BAD_PARENT_SHA1", Error)

	// BAD_TAG_OBJECT indicates a tag whose tagged object could not be
	// resolved.
	BAD_TAG_OBJECT = msg("BAD_TAG_OBJECT", Error)

	// BAD_TIMEZONE indicates an identity timezone not of the form
	// [+-]DDDD at end of line.
	BAD_TIMEZONE = msg("BAD_TIMEZONE", Error)

	// BAD_TREE indicates a commit whose tree hash could not be resolved to
	// a tree.
	BAD_TREE = msg("BAD_TREE", Error)

	// BAD_TREE_SHA1 indicates a malformed hash on a commit "tree" line.
	BAD_TREE_SHA1 = msg("BAD_TREE_SHA1", Error)

	// BAD_TYPE indicates a tag "type" value naming no object kind.
	BAD_TYPE = msg("BAD_TYPE", Error)

	// DUPLICATE_ENTRIES indicates two tree entries with the same name.
	DUPLICATE_ENTRIES = msg("DUPLICATE_ENTRIES", Error)

	// MISSING_AUTHOR indicates a commit with no "author" line.
	MISSING_AUTHOR = msg("MISSING_AUTHOR", Error)

	// MISSING_COMMITTER indicates a commit with no "committer" line.
	MISSING_COMMITTER = msg("MISSING_COMMITTER", Error)

	// MISSING_EMAIL indicates an identity line with no '<'.
	MISSING_EMAIL = msg("MISSING_EMAIL", Error)

	// MISSING_GRAFT indicates a grafted commit whose recorded parent count
	// disagrees with its graft.
	MISSING_GRAFT = msg("MISSING_GRAFT", Error)

	// MISSING_NAME_BEFORE_EMAIL indicates an identity line starting at '<'.
	MISSING_NAME_BEFORE_EMAIL = msg("MISSING_NAME_BEFORE_EMAIL", Error)

	// MISSING_OBJECT indicates a tag with no "object" line.
	MISSING_OBJECT = msg("MISSING_OBJECT", Error)

	// MISSING_PARENT indicates a commit whose cached parent list disagrees
	// with its declared "parent" lines.
	MISSING_PARENT = msg("MISSING_PARENT", Error)

	// MISSING_SPACE_BEFORE_DATE indicates an identity line without a space
	// after the email.
	MISSING_SPACE_BEFORE_DATE = msg("MISSING_SPACE_BEFORE_DATE", Error)

	// MISSING_SPACE_BEFORE_EMAIL indicates an identity line without a space
	// before the email.
	MISSING_SPACE_BEFORE_EMAIL = msg("MISSING_SPACE_BEFORE_EMAIL", Error)

	// MISSING_TAG indicates a tag "tag" line with no terminating newline.
	MISSING_TAG = msg("MISSING_TAG", Error)

	// MISSING_TAG_ENTRY indicates a tag with no "tag" line.
	MISSING_TAG_ENTRY = msg("MISSING_TAG_ENTRY", Error)

	// MISSING_TAG_OBJECT indicates a tag whose payload could not be read.
	MISSING_TAG_OBJECT = msg("MISSING_TAG_OBJECT", Error)

	// MISSING_TREE indicates a commit with no "tree" line.
	MISSING_TREE = msg("MISSING_TREE", Error)

	// MISSING_TYPE indicates a tag "type" line with no terminating newline.
	MISSING_TYPE = msg("MISSING_TYPE", Error)

	// MISSING_TYPE_ENTRY indicates a tag with no "type" line.
	MISSING_TYPE_ENTRY = msg("MISSING_TYPE_ENTRY", Error)

	// MULTIPLE_AUTHORS indicates a commit with more than one "author" line.
	MULTIPLE_AUTHORS = msg("MULTIPLE_AUTHORS", Error)

	// TAG_OBJECT_NOT_TAG indicates a tag whose loaded payload is some other
	// kind of object.
	TAG_OBJECT_NOT_TAG = msg("TAG_OBJECT_NOT_TAG", Error)

	// TREE_NOT_SORTED indicates tree entries out of canonical order.
	TREE_NOT_SORTED = msg("TREE_NOT_SORTED", Error)

	// UNKNOWN_TYPE indicates an object handle of no known kind reached the
	// checker; an internal error, not a data error.
	UNKNOWN_TYPE = msg("UNKNOWN_TYPE", Error)

	// ZERO_PADDED_DATE indicates an identity epoch with a leading zero.
	ZERO_PADDED_DATE = msg("ZERO_PADDED_DATE", Error)
)

// Warn diagnostics. Historically tolerated tree shapes.
var (
	// BAD_FILEMODE indicates a tree entry mode outside the allowed set.
	BAD_FILEMODE = msg("BAD_FILEMODE", Warn)

	// EMPTY_NAME indicates a tree entry with an empty name.
	EMPTY_NAME = msg("EMPTY_NAME", Warn)

	// FULL_PATHNAME indicates a tree entry name containing '/'.
	FULL_PATHNAME = msg("FULL_PATHNAME", Warn)

	// HAS_DOT indicates a tree entry named ".".
	HAS_DOT = msg("HAS_DOT", Warn)

	// HAS_DOTDOT indicates a tree entry named "..".
	HAS_DOTDOT = msg("HAS_DOTDOT", Warn)

	// HAS_DOTGIT indicates a tree entry named ".git" or a platform alias
	// of it.
	HAS_DOTGIT = msg("HAS_DOTGIT", Warn)

	// NULL_SHA1 indicates a tree entry pointing at the all-zero hash.
	NULL_SHA1 = msg("NULL_SHA1", Warn)

	// ZERO_PADDED_FILEMODE indicates a tree entry mode field with a
	// leading zero.
	ZERO_PADDED_FILEMODE = msg("ZERO_PADDED_FILEMODE", Warn)
)

// Info diagnostics. Suppressed unless configuration elevates them.
var (
	// BAD_TAG_NAME indicates a tag name that is not a well-formed
	// reference component.
	BAD_TAG_NAME = msg("BAD_TAG_NAME", Info)

	// MISSING_TAGGER_ENTRY indicates a tag with no "tagger" line; early
	// tags predate the field.
	MISSING_TAGGER_ENTRY = msg("MISSING_TAGGER_ENTRY", Info)
)

// catalog lists every defined ID for All and for building the lookup
// table.
var catalog = []ID{
	NUL_IN_HEADER,
	UNTERMINATED_HEADER,
	BAD_DATE,
	BAD_DATE_OVERFLOW,
	BAD_EMAIL,
	BAD_NAME,
	BAD_OBJECT_SHA1,
	BAD_PARENT_SHA1,
	BAD_TAG_OBJECT,
	BAD_TIMEZONE,
	BAD_TREE,
	BAD_TREE_SHA1,
	BAD_TYPE,
	DUPLICATE_ENTRIES,
	MISSING_AUTHOR,
	MISSING_COMMITTER,
	MISSING_EMAIL,
	MISSING_GRAFT,
	MISSING_NAME_BEFORE_EMAIL,
	MISSING_OBJECT,
	MISSING_PARENT,
	MISSING_SPACE_BEFORE_DATE,
	MISSING_SPACE_BEFORE_EMAIL,
	MISSING_TAG,
	MISSING_TAG_ENTRY,
	MISSING_TAG_OBJECT,
	MISSING_TREE,
	MISSING_TYPE,
	MISSING_TYPE_ENTRY,
	MULTIPLE_AUTHORS,
	TAG_OBJECT_NOT_TAG,
	TREE_NOT_SORTED,
	UNKNOWN_TYPE,
	ZERO_PADDED_DATE,
	BAD_FILEMODE,
	EMPTY_NAME,
	FULL_PATHNAME,
	HAS_DOT,
	HAS_DOTDOT,
	HAS_DOTGIT,
	NULL_SHA1,
	ZERO_PADDED_FILEMODE,
	BAD_TAG_NAME,
	MISSING_TAGGER_ENTRY,
}

// All returns every defined ID. The returned slice is a copy.
func All() []ID {
	out := make([]ID, len(catalog))
	copy(out, catalog)
	return out
}

var (
	lookupOnce sync.Once
	lookupTab  map[string]ID
)

// Lookup resolves a configuration key to its ID. Keys are matched
// case-insensitively with underscores ignored, so "MISSING_EMAIL",
// "missingemail", and "missingEmail" all resolve to [MISSING_EMAIL].
// The folded table is built on first call and reused.
func Lookup(key string) (ID, bool) {
	lookupOnce.Do(func() {
		lookupTab = make(map[string]ID, len(catalog))
		for _, id := range catalog {
			lookupTab[foldKey(id.name)] = id
		}
	})
	id, ok := lookupTab[foldKey(key)]
	return id, ok
}

// foldKey lowercases and strips underscores.
func foldKey(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
