package check

import (
	"fmt"
	"strings"

	"github.com/ahawks/git/diag"
)

// SetSeverity overrides the severity of one diagnostic. The key is a
// symbolic name matched case-insensitively with underscores optional;
// level is "error", "warn", or "ignore" (case-insensitive).
//
// Demoting a Fatal-defaulted diagnostic below Error is refused: those
// mark conditions the validators cannot parse past.
func (c *Checker) SetSeverity(key, level string) error {
	id, ok := diag.Lookup(key)
	if !ok {
		return fmt.Errorf("check: unknown diagnostic %q", key)
	}
	sev, ok := diag.ParseSeverity(level)
	if !ok {
		return fmt.Errorf("check: unknown severity %q for %s (want error, warn, or ignore)", level, id.Name())
	}
	if id.Default() == diag.Fatal && sev != diag.Error {
		return fmt.Errorf("check: cannot demote %s below error", id.Name())
	}
	c.overrides[id] = sev
	return nil
}

// ApplyConfig applies a compact configuration string. Tokens are
// separated by spaces, commas, or vertical bars; each is KEY=VALUE or
// KEY:VALUE. The key "skiplist" names a skip-list file to load; every
// other key is a diagnostic name passed to [Checker.SetSeverity].
//
//	missingEmail=ignore,zeroPaddedFilemode=error skiplist=.git/fsck-skip
func (c *Checker) ApplyConfig(cfg string) error {
	tokens := strings.FieldsFunc(cfg, func(r rune) bool {
		return r == ' ' || r == ',' || r == '|'
	})
	for _, token := range tokens {
		key, value, ok := cutToken(token)
		if !ok {
			return fmt.Errorf("check: missing '=' in config token %q", token)
		}
		if strings.EqualFold(key, "skiplist") {
			if err := c.LoadSkipList(value); err != nil {
				return err
			}
			continue
		}
		if err := c.SetSeverity(key, value); err != nil {
			return err
		}
	}
	return nil
}

// cutToken splits a token at its first '=' or ':'.
func cutToken(token string) (key, value string, ok bool) {
	i := strings.IndexAny(token, "=:")
	if i < 0 {
		return "", "", false
	}
	return token[:i], token[i+1:], true
}

// severityOf resolves the effective severity of a diagnostic: the
// override if present, else the catalog default with strict-mode Warn
// promotion. Fatal and Info pass through unchanged; the reporter
// resolves them.
func (c *Checker) severityOf(id diag.ID) diag.Severity {
	if sev, ok := c.overrides[id]; ok {
		return sev
	}
	def := id.Default()
	if def == diag.Warn && c.strict {
		return diag.Error
	}
	return def
}
