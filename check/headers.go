package check

import (
	"bytes"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

// verifyHeaders scans a commit or tag payload for a well-terminated
// header block. A NUL byte before the blank line and a payload with no
// blank line and no trailing newline are both fatal; a header-only
// payload ending in a single newline is accepted.
func (c *Checker) verifyHeaders(obj *object.Object, buf []byte) int {
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case 0:
			return c.reportf(obj, diag.NUL_IN_HEADER,
				"unterminated header: NUL at offset %d", i)
		case '\n':
			if i+1 < len(buf) && buf[i+1] == '\n' {
				return 0
			}
		}
	}

	// A header-only object: no body, but the last header line is
	// complete.
	if len(buf) > 0 && buf[len(buf)-1] == '\n' {
		return 0
	}
	return c.reportf(obj, diag.UNTERMINATED_HEADER, "unterminated header")
}

// skipPrefix returns buf with prefix removed, reporting whether the
// prefix was present.
func skipPrefix(buf []byte, prefix string) ([]byte, bool) {
	if len(buf) < len(prefix) || !bytes.HasPrefix(buf, []byte(prefix)) {
		return buf, false
	}
	return buf[len(prefix):], true
}

// advance skips n bytes, clamping at the end of the buffer. Hash-line
// parsing advances a fixed stride whether or not the line was
// well-formed, so a malformed line cannot stall the scan.
func advance(buf []byte, n int) []byte {
	if n > len(buf) {
		return buf[len(buf):]
	}
	return buf[n:]
}

// hashLineOK reports whether buf begins with a full lowercase-or-upper
// hex hash terminated by a newline, and returns the decoded hash.
func hashLineOK(buf []byte) (object.ID, bool) {
	id, ok := object.ParseHex(buf)
	if !ok || len(buf) <= object.HexLen || buf[object.HexLen] != '\n' {
		return id, false
	}
	return id, true
}
