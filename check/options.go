package check

import (
	"log/slog"
	"math"

	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/internal/dotgit"
	"github.com/ahawks/git/internal/refname"
	"github.com/ahawks/git/object"
)

// Checker validates objects against the format rules and applies the
// configured diagnostic policy. See the package documentation for the
// concurrency contract.
type Checker struct {
	store     object.Store
	strict    bool
	overrides map[diag.ID]diag.Severity
	skip      skipList
	report    ReportFunc
	walk      WalkFunc
	logger    *slog.Logger

	refnameOK     func(string) bool
	hfsDotGit     func(string) bool
	ntfsDotGit    func(string) bool
	dateOverflows func(uint64) bool
}

// Option configures a Checker.
type Option func(*Checker)

// New creates a Checker over the given store. The store may be nil for
// callers that validate pre-parsed objects and never walk; a tag checked
// without a payload then reports MISSING_TAG_OBJECT, and walking a tree,
// commit, or tag fails structurally.
func New(store object.Store, opts ...Option) *Checker {
	c := &Checker{
		store:         store,
		overrides:     make(map[diag.ID]diag.Severity),
		refnameOK:     refname.Check,
		hfsDotGit:     dotgit.IsHFS,
		ntfsDotGit:    dotgit.IsNTFS,
		dateOverflows: defaultDateOverflows,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.report == nil {
		c.report = StandardReport(c.logger)
	}
	return c
}

// WithStrict enables strict mode: Warn-defaulted diagnostics without an
// override are promoted to Error, and the group-writable regular file
// mode is no longer tolerated in trees.
func WithStrict(strict bool) Option {
	return func(c *Checker) {
		c.strict = strict
	}
}

// WithLogger sets the logger for debug output. If not set, no logging is
// performed.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithReport sets the diagnostic callback. If not set, diagnostics are
// delivered through [StandardReport] over the configured logger.
func WithReport(fn ReportFunc) Option {
	return func(c *Checker) {
		c.report = fn
	}
}

// WithWalk sets the reference callback used by [Checker.Walk].
func WithWalk(fn WalkFunc) Option {
	return func(c *Checker) {
		c.walk = fn
	}
}

// WithRefnameCheck replaces the reference-name predicate used for tag
// names.
func WithRefnameCheck(fn func(string) bool) Option {
	return func(c *Checker) {
		c.refnameOK = fn
	}
}

// WithDotGitAliases replaces the platform-alias predicates used to flag
// tree entries that alias ".git". Either may be nil to disable that
// platform's check.
func WithDotGitAliases(hfs, ntfs func(string) bool) Option {
	return func(c *Checker) {
		c.hfsDotGit = hfs
		c.ntfsDotGit = ntfs
	}
}

// WithDateOverflows replaces the epoch-domain predicate used on identity
// lines.
func WithDateOverflows(fn func(uint64) bool) Option {
	return func(c *Checker) {
		c.dateOverflows = fn
	}
}

// defaultDateOverflows rejects epochs that do not survive conversion to
// a signed millisecond timestamp.
func defaultDateOverflows(u uint64) bool {
	return u > math.MaxInt64/1000
}
