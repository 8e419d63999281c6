// Package check validates the canonical serialization of store objects
// and walks their direct references.
//
// A [Checker] bundles the validation policy: severity overrides, strict
// mode, the skip-list, and the report and walk callbacks. Construct one
// with [New], adjust policy with [Checker.SetSeverity],
// [Checker.ApplyConfig], or [Checker.ApplyConfigFile], then feed it
// objects:
//
//	c := check.New(store,
//		check.WithStrict(true),
//		check.WithReport(report),
//	)
//	if err := c.ApplyConfig("missingemail=ignore,skiplist=.git/fsck-skip"); err != nil { ... }
//	n := c.Object(commit, nil)
//
// # Return protocol
//
// Validation and walking return an int whose sign carries meaning:
// negative is a structural failure that aborted the scan, zero is clean,
// and positive is the sum of the report callback's returns for the
// diagnostics that were delivered. The stock callback returns 1 per
// error and 0 per warning, so the positive case is an error tally.
//
// # Policy
//
// A diagnostic's effective severity is its override if one is set, else
// its catalog default, with Warn promoted to Error under strict mode.
// Fatal-defaulted diagnostics cannot be demoted below Error; attempting
// to is a configuration error. Diagnostics about objects on the
// skip-list are never delivered.
//
// The Checker is synchronous and not self-synchronizing: do not mutate
// policy concurrently with validation on the same Checker. Distinct
// Checkers share nothing and may run in parallel.
package check
