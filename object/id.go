package object

import (
	"encoding/hex"
	"fmt"
)

// IDLen is the length of an object identity hash in bytes.
const IDLen = 20

// HexLen is the length of the hexadecimal form of an ID.
const HexLen = IDLen * 2

// ID is the 20-byte identity hash of an object's canonical serialization.
//
// ID is a value type and is comparable; the zero value is the all-zero
// hash, which no real object carries.
type ID [IDLen]byte

// ZeroID is the all-zero hash. Tree entries pointing at it are flagged by
// the consistency checker.
var ZeroID ID

// String returns the lowercase hexadecimal form of the ID.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the ID is the all-zero hash.
func (id ID) IsZero() bool {
	return id == ZeroID
}

// Compare returns -1, 0, or 1 ordering IDs as unsigned byte strings.
func (id ID) Compare(other ID) int {
	for i := 0; i < IDLen; i++ {
		if id[i] != other[i] {
			if id[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ParseID parses a 40-character hexadecimal string into an ID.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != HexLen {
		return id, fmt.Errorf("object: bad id %q: want %d hex characters", s, HexLen)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("object: bad id %q: %w", s, err)
	}
	copy(id[:], b)
	return id, nil
}

// ParseHex decodes exactly HexLen hexadecimal bytes from the front of buf.
// It reports false if buf is too short or contains a non-hex byte in that
// range. Trailing bytes are ignored.
func ParseHex(buf []byte) (ID, bool) {
	var id ID
	if len(buf) < HexLen {
		return id, false
	}
	for i := 0; i < IDLen; i++ {
		hi := hexVal(buf[2*i])
		lo := hexVal(buf[2*i+1])
		if hi < 0 || lo < 0 {
			return id, false
		}
		id[i] = byte(hi<<4 | lo)
	}
	return id, true
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
