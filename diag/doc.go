// Package diag enumerates the diagnostics the object consistency checker
// can raise and their default severities.
//
// The catalog is a closed set: [ID] values carry unexported fields, so
// only identifiers defined in this package are valid. Each diagnostic has
// a stable UPPER_SNAKE symbolic name; tooling matches on names even when
// message text changes.
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more
// severe. Two of the five levels exist only inside the catalog and the
// reporting layer:
//
//   - [Fatal] diagnostics always reach the sink as [Error] and cannot be
//     demoted below Error by configuration.
//   - [Info] diagnostics are suppressed unless configuration explicitly
//     elevates them.
//
// User configuration therefore speaks only "error", "warn", and
// "ignore"; see [ParseSeverity].
//
// # Lookup
//
// Configuration refers to diagnostics case-insensitively with underscores
// optional: MISSING_EMAIL, missingemail, and missingEmail all name the
// same [ID]. The folded lookup table is derived from the catalog once, on
// first use.
package diag
