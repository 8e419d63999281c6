// Package dotgit detects tree entry names that alias ".git" on
// case-insensitive or normalizing filesystems. A tree that smuggles such
// an entry can overwrite repository metadata on checkout, so the checker
// flags the aliases alongside the literal name.
package dotgit

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// isHFSIgnorable reports code points HFS+ drops when comparing names.
func isHFSIgnorable(r rune) bool {
	switch r {
	case 0x200c, 0x200d, 0x200e, 0x200f, // zero-width and direction marks
		0x202a, 0x202b, 0x202c, 0x202d, 0x202e, // embedding controls
		0x206a, 0x206b, 0x206c, 0x206d, 0x206e, 0x206f, // deprecated format chars
		0xfeff: // BOM
		return true
	}
	return false
}

// IsHFS reports whether name is ".git" under HFS+ name folding: the name
// is decomposed, ignorable code points are dropped, and the remainder is
// case-folded before comparing.
func IsHFS(name string) bool {
	return isHFSStr(name, ".git")
}

func isHFSStr(name, needle string) bool {
	var folded strings.Builder
	for _, r := range norm.NFD.String(name) {
		if isHFSIgnorable(r) {
			continue
		}
		folded.WriteRune(unicode.ToLower(r))
	}
	return folded.String() == needle
}

// IsNTFS reports whether name aliases ".git" under NTFS semantics:
// case-insensitive match of ".git" or the 8.3 short name "git~1", with
// any run of trailing dots and spaces stripped. Only the leading path
// segment is considered.
func IsNTFS(name string) bool {
	segment := name
	for i := 0; i < len(name); i++ {
		if name[i] == '/' || name[i] == '\\' {
			segment = name[:i]
			break
		}
	}
	return isNTFSAlias(segment, ".git") || isNTFSAlias(segment, "git~1")
}

func isNTFSAlias(segment, needle string) bool {
	if len(segment) < len(needle) {
		return false
	}
	if !strings.EqualFold(segment[:len(needle)], needle) {
		return false
	}
	for i := len(needle); i < len(segment); i++ {
		if segment[i] != ' ' && segment[i] != '.' {
			return false
		}
	}
	return true
}
