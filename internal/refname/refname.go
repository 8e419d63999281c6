// Package refname checks reference-name well-formedness.
//
// A reference name is slash-separated components. The rules here reject
// the shapes that break ref storage or shell handling: empty components,
// components beginning with '.' or ending in ".lock", "..", control
// bytes, the glob and revision-syntax metacharacters, "@{", and the bare
// name "@".
package refname

import "strings"

// badRefByte reports bytes never allowed anywhere in a refname.
func badRefByte(c byte) bool {
	if c < 0x20 || c == 0x7f {
		return true
	}
	switch c {
	case ' ', '~', '^', ':', '?', '*', '[', '\\':
		return true
	}
	return false
}

// Check reports whether name is a well-formed reference name.
func Check(name string) bool {
	if name == "" || name == "@" {
		return false
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return false
	}
	if strings.HasSuffix(name, ".") {
		return false
	}
	if strings.Contains(name, "@{") || strings.Contains(name, "..") {
		return false
	}
	for _, component := range strings.Split(name, "/") {
		if !checkComponent(component) {
			return false
		}
	}
	return true
}

func checkComponent(c string) bool {
	if c == "" {
		return false
	}
	if strings.HasPrefix(c, ".") || strings.HasSuffix(c, ".lock") {
		return false
	}
	for i := 0; i < len(c); i++ {
		if badRefByte(c[i]) {
			return false
		}
	}
	return true
}
