package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ahawks/git/object"
)

// Graft returns the graft record for a commit hash, or nil.
func (l *Loose) Graft(id object.ID) *object.Graft {
	return l.grafts[id]
}

// RegisterShallow records a shallow-boundary graft for a commit: its
// declared parents are cut off and it reports a parent count of -1.
func (l *Loose) RegisterShallow(id object.ID) {
	l.grafts[id] = &object.Graft{ID: id, Shallow: true}
}

// LoadGrafts reads a graft file: one line per commit, the commit hash
// followed by whitespace-separated replacement parent hashes. Blank
// lines and lines starting with '#' are skipped. A later line for the
// same commit replaces the earlier one.
func (l *Loose) LoadGrafts(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("store: grafts %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		id, err := object.ParseID(fields[0])
		if err != nil {
			return fmt.Errorf("store: grafts %s line %d: %w", path, n, err)
		}
		graft := &object.Graft{ID: id}
		for _, field := range fields[1:] {
			parent, err := object.ParseID(field)
			if err != nil {
				return fmt.Errorf("store: grafts %s line %d: %w", path, n, err)
			}
			graft.Parents = append(graft.Parents, parent)
		}
		l.grafts[id] = graft
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("store: grafts %s: %w", path, err)
	}
	return nil
}
