package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ahawks/git/diag"
)

func TestSetSeverity(t *testing.T) {
	c := New(nil)

	if err := c.SetSeverity("missing_email", "ignore"); err != nil {
		t.Fatalf("SetSeverity(missing_email, ignore): %v", err)
	}
	if got := c.severityOf(diag.MISSING_EMAIL); got != diag.Ignore {
		t.Errorf("severityOf(MISSING_EMAIL) = %v; want Ignore", got)
	}

	// Keys fold case and underscores.
	if err := c.SetSeverity("hasDotgit", "error"); err != nil {
		t.Fatalf("SetSeverity(hasDotgit, error): %v", err)
	}
	if got := c.severityOf(diag.HAS_DOTGIT); got != diag.Error {
		t.Errorf("severityOf(HAS_DOTGIT) = %v; want Error", got)
	}
}

func TestSetSeverity_Errors(t *testing.T) {
	c := New(nil)

	if err := c.SetSeverity("noSuchDiagnostic", "warn"); err == nil {
		t.Error("unknown diagnostic accepted")
	}
	if err := c.SetSeverity("missingEmail", "fatal"); err == nil {
		t.Error(`severity word "fatal" accepted; not user-settable`)
	}
	if err := c.SetSeverity("missingEmail", "info"); err == nil {
		t.Error(`severity word "info" accepted; not user-settable`)
	}
}

func TestSetSeverity_FatalUndemotable(t *testing.T) {
	c := New(nil)

	for _, level := range []string{"warn", "ignore"} {
		if err := c.SetSeverity("nulInHeader", level); err == nil {
			t.Errorf("demoting NUL_IN_HEADER to %s accepted", level)
		}
	}
	// Error is the one severity a fatal diagnostic may be pinned to.
	if err := c.SetSeverity("nulInHeader", "error"); err != nil {
		t.Errorf("SetSeverity(nulInHeader, error): %v", err)
	}
}

func TestSeverityOf_Defaults(t *testing.T) {
	c := New(nil)

	for _, id := range diag.All() {
		if got := c.severityOf(id); got != id.Default() {
			t.Errorf("severityOf(%s) = %v; want default %v", id.Name(), got, id.Default())
		}
	}
}

func TestSeverityOf_Strict(t *testing.T) {
	c := New(nil, WithStrict(true))

	for _, id := range diag.All() {
		got := c.severityOf(id)
		switch id.Default() {
		case diag.Warn:
			if got != diag.Error {
				t.Errorf("strict severityOf(%s) = %v; want Error", id.Name(), got)
			}
		default:
			if got != id.Default() {
				t.Errorf("strict severityOf(%s) = %v; want %v", id.Name(), got, id.Default())
			}
		}
	}
}

func TestSeverityOf_OverrideBeatsStrict(t *testing.T) {
	c := New(nil, WithStrict(true))
	if err := c.SetSeverity("hasDot", "warn"); err != nil {
		t.Fatal(err)
	}
	if got := c.severityOf(diag.HAS_DOT); got != diag.Warn {
		t.Errorf("severityOf(HAS_DOT) = %v; want the explicit Warn override", got)
	}
}

func TestSeverityOf_FatalNeverBelowError(t *testing.T) {
	c := New(nil)
	// Exhaust the settable levels that are accepted for fatal defaults.
	_ = c.SetSeverity("unterminatedHeader", "error")

	for _, id := range diag.All() {
		if id.Default() != diag.Fatal {
			continue
		}
		got := c.severityOf(id)
		if got != diag.Fatal && got != diag.Error {
			t.Errorf("severityOf(%s) = %v; fatal defaults must stay at error or above", id.Name(), got)
		}
	}
}

func TestApplyConfig(t *testing.T) {
	c := New(nil)

	err := c.ApplyConfig("missingEmail=ignore,has_dot:error|badTagName=warn zeroPaddedDate=warn")
	if err != nil {
		t.Fatalf("ApplyConfig: %v", err)
	}

	want := map[diag.ID]diag.Severity{
		diag.MISSING_EMAIL:    diag.Ignore,
		diag.HAS_DOT:          diag.Error,
		diag.BAD_TAG_NAME:     diag.Warn,
		diag.ZERO_PADDED_DATE: diag.Warn,
	}
	for id, sev := range want {
		if got := c.severityOf(id); got != sev {
			t.Errorf("severityOf(%s) = %v; want %v", id.Name(), got, sev)
		}
	}
}

func TestApplyConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
	}{
		{"missing separator", "missingEmail"},
		{"unknown id", "notAThing=warn"},
		{"bad severity word", "missingEmail=loud"},
		{"fatal demotion", "nulInHeader=ignore"},
		{"skiplist without file", "skiplist=/no/such/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			if err := c.ApplyConfig(tt.cfg); err == nil {
				t.Errorf("ApplyConfig(%q) succeeded; want error", tt.cfg)
			}
		})
	}
}

func TestApplyConfig_SkipList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skip")
	content := strings.Repeat("11", 20) + "\n" + strings.Repeat("22", 20) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(nil)
	if err := c.ApplyConfig("skiplist=" + path); err != nil {
		t.Fatalf("ApplyConfig(skiplist): %v", err)
	}
	if !c.skip.contains(testID(0x11)) || !c.skip.contains(testID(0x22)) {
		t.Error("loaded hashes not found in skip-list")
	}
	if c.skip.contains(testID(0x33)) {
		t.Error("skip-list claims an absent hash")
	}
}
