package check

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ahawks/git/object"
)

// skipRecordLen is the fixed stride of a skip-list file: 40 hex
// characters and a newline.
const skipRecordLen = object.HexLen + 1

// skipList is an append-only set of object hashes. It tracks whether
// appends arrived in ascending order; while they do, lookups use binary
// search, otherwise a linear scan.
type skipList struct {
	ids      []object.ID
	unsorted bool
}

func (s *skipList) append(id object.ID) {
	if !s.unsorted && len(s.ids) > 0 && s.ids[len(s.ids)-1].Compare(id) > 0 {
		s.unsorted = true
	}
	s.ids = append(s.ids, id)
}

func (s *skipList) contains(id object.ID) bool {
	if s.unsorted {
		return slices.Contains(s.ids, id)
	}
	_, found := slices.BinarySearchFunc(s.ids, id, object.ID.Compare)
	return found
}

func (s *skipList) len() int {
	return len(s.ids)
}

// LoadSkipList reads a skip-list file and appends its hashes to the
// Checker's skip-list. The file is a sequence of fixed 41-byte records:
// 40 hex characters and a newline. Any malformed or short record fails
// the whole load.
func (c *Checker) LoadSkipList(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("check: skiplist %s: %w", path, err)
	}
	defer f.Close()

	rec := make([]byte, skipRecordLen)
	for n := 0; ; n++ {
		_, err := io.ReadFull(f, rec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("check: skiplist %s: short record %d: %w", path, n, err)
		}
		id, ok := object.ParseHex(rec)
		if !ok || rec[object.HexLen] != '\n' {
			return fmt.Errorf("check: skiplist %s: invalid record %d", path, n)
		}
		c.skip.append(id)
	}
}
