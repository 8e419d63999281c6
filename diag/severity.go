package diag

import "strings"

// Severity classifies a diagnostic. It is an ordered enumeration where
// lower numeric values are more severe; use the comparison helpers rather
// than raw numeric comparisons.
type Severity uint8

const (
	// Fatal marks structural failures that make further parsing of the
	// object unsafe. Fatal exists only as a catalog default; the reporter
	// delivers it as Error and refuses to demote it below Error.
	Fatal Severity = iota

	// Error marks findings that make an object invalid.
	Error

	// Warn marks findings that should be corrected but do not invalidate
	// the object.
	Warn

	// Info marks findings of historical interest. Info exists only as a
	// catalog default; the reporter suppresses it unless configuration
	// elevates the diagnostic.
	Info

	// Ignore suppresses a diagnostic entirely.
	Ignore
)

// String returns the canonical lowercase label for the severity:
// "fatal", "error", "warn", "info", "ignore".
func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// IsFailure reports whether the severity counts toward an error tally.
// True for Fatal and Error.
func (s Severity) IsFailure() bool {
	return s <= Error
}

// ParseSeverity resolves a user-supplied severity word. Only the three
// user-settable levels are accepted: "error", "warn", "ignore"
// (case-insensitive). Fatal and Info are not part of the override
// alphabet.
func ParseSeverity(word string) (Severity, bool) {
	switch strings.ToLower(word) {
	case "error":
		return Error, true
	case "warn":
		return Warn, true
	case "ignore":
		return Ignore, true
	default:
		return 0, false
	}
}
