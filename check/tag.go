package check

import (
	"bytes"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

// checkTag validates a tag payload: the header block, the object, type,
// and tag lines, the optional tagger identity, and the resolvability of
// the tagged object. When no raw payload is supplied, it is loaded from
// the store.
func (c *Checker) checkTag(t *object.Tag, data []byte) int {
	obj := &t.Object

	buf := data
	if buf == nil {
		if c.store == nil {
			return c.reportf(obj, diag.MISSING_TAG_OBJECT, "cannot read tag object")
		}
		payload, kind, err := c.store.ReadObject(obj.ID)
		if err != nil {
			return c.reportf(obj, diag.MISSING_TAG_OBJECT, "cannot read tag object")
		}
		if kind != object.KindTag {
			return c.reportf(obj, diag.TAG_OBJECT_NOT_TAG,
				"expected tag got %s", kind)
		}
		buf = payload
	}

	if code := c.verifyHeaders(obj, buf); code != 0 {
		return code
	}

	rest, ok := skipPrefix(buf, "object ")
	if !ok {
		return c.reportf(obj, diag.MISSING_OBJECT, "invalid format - expected 'object' line")
	}
	if _, lineOK := hashLineOK(rest); !lineOK {
		if code := c.reportf(obj, diag.BAD_OBJECT_SHA1,
			"invalid 'object' line format - bad sha1"); code != 0 {
			return code
		}
	}
	rest = advance(rest, hashLineAdvance)

	after, ok := skipPrefix(rest, "type ")
	if !ok {
		return c.reportf(obj, diag.MISSING_TYPE_ENTRY, "invalid format - expected 'type' line")
	}
	nl := bytes.IndexByte(after, '\n')
	if nl < 0 {
		return c.reportf(obj, diag.MISSING_TYPE, "invalid format - unexpected end after 'type' line")
	}
	if _, known := object.KindFromBytes(after[:nl]); !known {
		if code := c.reportf(obj, diag.BAD_TYPE, "invalid 'type' value"); code != 0 {
			return code
		}
	}
	rest = after[nl+1:]

	after, ok = skipPrefix(rest, "tag ")
	if !ok {
		return c.reportf(obj, diag.MISSING_TAG_ENTRY, "invalid format - expected 'tag' line")
	}
	nl = bytes.IndexByte(after, '\n')
	if nl < 0 {
		return c.reportf(obj, diag.MISSING_TAG, "invalid format - unexpected end after 'tag' line")
	}
	if c.refnameOK != nil && !c.refnameOK("refs/tags/"+string(after[:nl])) {
		if code := c.reportf(obj, diag.BAD_TAG_NAME,
			"invalid 'tag' name: %s", after[:nl]); code != 0 {
			return code
		}
	}
	rest = after[nl+1:]

	after, ok = skipPrefix(rest, "tagger ")
	if !ok {
		// Early tags predate the tagger field; advisory only.
		if code := c.reportf(obj, diag.MISSING_TAGGER_ENTRY,
			"invalid format - expected 'tagger' line"); code != 0 {
			return code
		}
	} else if code, _ := c.checkIdent(obj, after); code != 0 {
		return code
	}

	if t.Tagged == nil {
		return c.reportf(obj, diag.BAD_TAG_OBJECT, "could not load tagged object")
	}
	return 0
}
