// Package store implements the loose-object store: one zlib-deflated
// file per object under a fan-out directory, each payload prefixed with
// a "<kind> <size>\0" envelope.
//
// [Loose] interns object handles by hash and resolves their cached
// fields, satisfying [object.Store] for the check package. It verifies
// envelope kind and declared size but performs no hash verification;
// that is a separate concern of repository maintenance.
//
// A Loose value is not safe for concurrent use; its intern maps are
// unsynchronized.
package store
