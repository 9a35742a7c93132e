// SPDX-License-Identifier: MIT

package subject

import (
	"errors"
	"log/slog"
	"time"

	"github.com/brainarterynetwork/bava/swc"
)

var (
	// ErrSubjectExists is returned when an identifier is already registered.
	ErrSubjectExists = errors.New("subject: identifier already registered")

	// ErrSubjectNotFound is returned by Get for unknown identifiers.
	ErrSubjectNotFound = errors.New("subject: identifier not found")
)

// DefaultWorkers is the batch parallelism used when none is configured.
const DefaultWorkers = 4

// Option configures New and Load.
type Option func(*Options)

// Options holds per-subject settings.
type Options struct {
	// ID overrides the identifier derived by CaseID.
	ID string
	// Parse is forwarded to swc.ReadFile.
	Parse []swc.Option
	// Logger receives pipeline records.
	Logger *slog.Logger
}

// WithID sets the subject identifier.
func WithID(id string) Option {
	return func(o *Options) { o.ID = id }
}

// WithParseOptions appends tracing parser options.
func WithParseOptions(opts ...swc.Option) Option {
	return func(o *Options) { o.Parse = append(o.Parse, opts...) }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ManagerOption configures NewManager.
type ManagerOption func(*Manager)

// WithWorkers bounds the number of subjects built at once. Values below
// one are ignored.
func WithWorkers(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithSubjectTimeout bounds the time spent on each subject; zero disables
// the limit.
func WithSubjectTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d >= 0 {
			m.timeout = d
		}
	}
}

// WithSkipMissing controls whether missing files are logged and skipped
// (the default) or fail the batch.
func WithSkipMissing(skip bool) ManagerOption {
	return func(m *Manager) { m.skipMissing = skip }
}

// WithManagerLogger sets the manager's logger, also handed to every
// subject it loads.
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithSubjectOptions sets options applied to every subject the manager
// loads.
func WithSubjectOptions(opts ...Option) ManagerOption {
	return func(m *Manager) { m.subjectOpts = append(m.subjectOpts, opts...) }
}
