// Package trace provides nil-safe slog helpers for the checker's
// optional debug logging.
//
// Every library surface that logs takes an optional *slog.Logger; a nil
// logger disables logging with only a nil check paid at the call site.
// [Begin] and [Op.End] bracket an operation so start, outcome, and
// duration land in one place.
package trace
