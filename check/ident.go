package check

import (
	"bytes"
	"math"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

// checkIdent validates one identity line, "<name> <email> <epoch> <tz>",
// and returns the buffer positioned after the line's newline. The scan
// fails fast: the first diagnostic ends the line scan and its report
// code is returned. A zero code — clean line, or a finding the policy
// suppressed — means the caller continues with the returned cursor.
func (c *Checker) checkIdent(obj *object.Object, buf []byte) (int, []byte) {
	line := buf
	rest := buf[len(buf):]
	hasNL := false
	if nl := bytes.IndexByte(buf, '\n'); nl >= 0 {
		line = buf[:nl]
		rest = buf[nl+1:]
		hasNL = true
	}

	if len(line) > 0 && line[0] == '<' {
		return c.reportf(obj, diag.MISSING_NAME_BEFORE_EMAIL,
			"invalid author/committer line - missing space before email"), rest
	}

	// Name segment runs to the first angle bracket.
	p := 0
	for p < len(line) && line[p] != '<' && line[p] != '>' {
		p++
	}
	if p < len(line) && line[p] == '>' {
		return c.reportf(obj, diag.BAD_NAME,
			"invalid author/committer line - bad name"), rest
	}
	if p == len(line) {
		return c.reportf(obj, diag.MISSING_EMAIL,
			"invalid author/committer line - missing email"), rest
	}
	if line[p-1] != ' ' {
		return c.reportf(obj, diag.MISSING_SPACE_BEFORE_EMAIL,
			"invalid author/committer line - missing space before email"), rest
	}

	// Email segment runs to the closing bracket.
	p++
	for p < len(line) && line[p] != '<' && line[p] != '>' {
		p++
	}
	if p == len(line) || line[p] != '>' {
		return c.reportf(obj, diag.BAD_EMAIL,
			"invalid author/committer line - bad email"), rest
	}
	p++
	if p >= len(line) || line[p] != ' ' {
		return c.reportf(obj, diag.MISSING_SPACE_BEFORE_DATE,
			"invalid author/committer line - missing space before date"), rest
	}
	p++

	// A lone "0" epoch is legitimate; any other leading zero is padding.
	if p < len(line) && line[p] == '0' &&
		!(p+1 < len(line) && line[p+1] == ' ') {
		return c.reportf(obj, diag.ZERO_PADDED_DATE,
			"invalid author/committer line - zero-padded date"), rest
	}

	start := p
	var epoch uint64
	overflow := false
	for p < len(line) && line[p] >= '0' && line[p] <= '9' {
		d := uint64(line[p] - '0')
		if epoch > (math.MaxUint64-d)/10 {
			overflow = true
		} else {
			epoch = epoch*10 + d
		}
		p++
	}
	if overflow {
		epoch = math.MaxUint64
	}
	if p > start && c.dateOverflows(epoch) {
		return c.reportf(obj, diag.BAD_DATE_OVERFLOW,
			"invalid author/committer line - date causes integer overflow"), rest
	}
	if p == start || p >= len(line) || line[p] != ' ' {
		return c.reportf(obj, diag.BAD_DATE,
			"invalid author/committer line - bad date"), rest
	}
	p++

	// Timezone is [+-]DDDD and must close the line, newline included.
	tzOK := hasNL && len(line)-p == 5 &&
		(line[p] == '+' || line[p] == '-') &&
		isDigit(line[p+1]) && isDigit(line[p+2]) &&
		isDigit(line[p+3]) && isDigit(line[p+4])
	if !tzOK {
		return c.reportf(obj, diag.BAD_TIMEZONE,
			"invalid author/committer line - bad time zone"), rest
	}
	return 0, rest
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
