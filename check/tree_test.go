package check

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
)

type testEntry struct {
	mode string
	name string
	id   object.ID
}

func treePayload(entries ...testEntry) []byte {
	var buf []byte
	for _, e := range entries {
		buf = append(buf, e.mode...)
		buf = append(buf, ' ')
		buf = append(buf, e.name...)
		buf = append(buf, 0)
		buf = append(buf, e.id[:]...)
	}
	return buf
}

// runTree checks a tree built from entries and returns captured
// diagnostics and the return code.
func runTree(t *testing.T, strict bool, entries ...testEntry) ([]testReport, int) {
	t.Helper()
	var got []testReport
	c := New(nil, WithStrict(strict), WithReport(recordingReport(&got)))
	tree := &object.Tree{
		Object: object.Object{ID: testID(0xee), Kind: object.KindTree},
		Buffer: treePayload(entries...),
	}
	return got, c.Object(tree, nil)
}

func TestCheckTree_Clean(t *testing.T) {
	got, code := runTree(t, false,
		testEntry{"100644", "Makefile", testID(1)},
		testEntry{"100755", "configure", testID(2)},
		testEntry{"40000", "src", testID(3)},
		testEntry{"120000", "symlink", testID(4)},
		testEntry{"160000", "vendored", testID(5)},
	)
	if code != 0 || len(got) != 0 {
		t.Errorf("clean tree: code %d, reports %v", code, messagePrefixes(got))
	}
}

func TestCheckTree_Diagnostics(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		entries []testEntry
		want    []string
	}{
		{
			"null sha1",
			false,
			[]testEntry{{"100644", "a", object.ZeroID}},
			[]string{"nullSha1"},
		},
		{
			"full pathname",
			false,
			[]testEntry{{"100644", "a/b", testID(1)}},
			[]string{"fullPathname"},
		},
		{
			"empty name",
			false,
			[]testEntry{{"100644", "", testID(1)}},
			[]string{"emptyName"},
		},
		{
			"dot",
			false,
			[]testEntry{{"100644", ".", testID(1)}},
			[]string{"hasDot"},
		},
		{
			"dotdot",
			false,
			[]testEntry{{"100644", "..", testID(1)}},
			[]string{"hasDotdot"},
		},
		{
			"dotgit",
			false,
			[]testEntry{{"100644", ".git", testID(1)}},
			[]string{"hasDotgit"},
		},
		{
			"dotgit ntfs alias",
			false,
			[]testEntry{{"100644", ".GIT.", testID(1)}},
			[]string{"hasDotgit"},
		},
		{
			"zero padded mode",
			false,
			[]testEntry{{"0100644", "a", testID(1)}},
			[]string{"zeroPaddedFilemode"},
		},
		{
			"bad mode",
			false,
			[]testEntry{{"100600", "a", testID(1)}},
			[]string{"badFilemode"},
		},
		{
			"group-writable tolerated unless strict",
			true,
			[]testEntry{{"100664", "a", testID(1)}},
			[]string{"badFilemode"},
		},
		{
			"unsorted",
			false,
			[]testEntry{{"100644", "b", testID(1)}, {"100644", "a", testID(2)}},
			[]string{"treeNotSorted"},
		},
		{
			"duplicates, same modes",
			false,
			[]testEntry{{"100644", "a", testID(1)}, {"100644", "a", testID(2)}},
			[]string{"duplicateEntries"},
		},
		{
			"duplicates, blob then tree",
			false,
			[]testEntry{{"100644", "a", testID(1)}, {"40000", "a", testID(2)}},
			[]string{"duplicateEntries"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runTree(t, tt.strict, tt.entries...)
			if !slices.Equal(messagePrefixes(got), tt.want) {
				t.Errorf("reports = %v; want %v", messagePrefixes(got), tt.want)
			}
		})
	}
}

func TestCheckTree_GroupWritableLegacyMode(t *testing.T) {
	got, code := runTree(t, false, testEntry{"100664", "a", testID(1)})
	if code != 0 || len(got) != 0 {
		t.Errorf("100664 outside strict mode: code %d, reports %v", code, messagePrefixes(got))
	}
}

func TestCheckTree_DirectorySlashOrdering(t *testing.T) {
	// "a" as a directory orders as "a/", which follows "a.c"; this shape
	// is properly sorted even though bytewise "a" < "a.c".
	got, code := runTree(t, false,
		testEntry{"100644", "a.c", testID(1)},
		testEntry{"40000", "a", testID(2)},
	)
	if code != 0 || len(got) != 0 {
		t.Errorf("a.c then a/ reported: %v", messagePrefixes(got))
	}

	// The same names with plain blobs are out of order.
	got, _ = runTree(t, false,
		testEntry{"100644", "a.c", testID(1)},
		testEntry{"100644", "a", testID(2)},
	)
	if !slices.Equal(messagePrefixes(got), []string{"treeNotSorted"}) {
		t.Errorf("a.c then a reported: %v", messagePrefixes(got))
	}
}

func TestCheckTree_OneDiagnosticPerClass(t *testing.T) {
	// Two dot-git entries (also a duplicate pair) and an out-of-order
	// pair collapse into one report per class.
	got, _ := runTree(t, false,
		testEntry{"100644", "z", testID(1)},
		testEntry{"100644", ".git", testID(2)},
		testEntry{"100644", ".git", testID(3)},
		testEntry{"100644", "m", testID(4)},
	)
	prefixes := messagePrefixes(got)
	sort.Strings(prefixes)
	want := []string{"duplicateEntries", "hasDotgit", "treeNotSorted"}
	if !slices.Equal(prefixes, want) {
		t.Errorf("reports = %v; want %v", prefixes, want)
	}
}

func TestCheckTree_StrictPromotesWarnings(t *testing.T) {
	got, code := runTree(t, true, testEntry{"100644", ".git", testID(1)})
	if len(got) != 1 {
		t.Fatalf("reports = %v", messagePrefixes(got))
	}
	if got[0].severity != diag.Error {
		t.Errorf("severity = %v; want Error under strict", got[0].severity)
	}
	if code != 1 {
		t.Errorf("code = %d; want 1", code)
	}
}

func TestCheckTree_Unparseable(t *testing.T) {
	var got []testReport
	c := New(nil, WithReport(recordingReport(&got)))
	tree := &object.Tree{
		Object: object.Object{ID: testID(0xee), Kind: object.KindTree},
		Buffer: []byte("not a tree"),
	}
	if code := c.Object(tree, nil); code != -1 {
		t.Errorf("unparseable tree = %d; want -1", code)
	}
	if len(got) != 0 {
		t.Errorf("unparseable tree still reported: %v", messagePrefixes(got))
	}
}

func TestCheckTree_SortedPropertyHolds(t *testing.T) {
	// Sorting arbitrary distinct entries by the entry order and feeding
	// them through the validator never yields ordering diagnostics.
	rng := rand.New(rand.NewSource(0x5eed))
	names := []string{"a", "a.c", "ab", "b", "ba", "lib", "libx", "zz"}

	for trial := 0; trial < 50; trial++ {
		var entries []testEntry
		for i, name := range names {
			mode := "100644"
			if rng.Intn(2) == 0 {
				mode = "40000"
			}
			entries = append(entries, testEntry{mode, name, testID(byte(i + 1))})
		}
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		sort.Slice(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			return verifyOrdered(treeMode(a.mode), []byte(a.name), treeMode(b.mode), []byte(b.name)) == treeOrdered
		})

		got, code := runTree(t, false, entries...)
		if code != 0 || len(got) != 0 {
			t.Fatalf("trial %d: sorted entries reported %v", trial, messagePrefixes(got))
		}
	}
}

func treeMode(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		v = v*8 + uint32(s[i]-'0')
	}
	return v
}
