// SPDX-License-Identifier: MIT

package subject

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brainarterynetwork/bava/swc"
)

// Manager is a concurrency-safe registry of subjects.
type Manager struct {
	mu       sync.RWMutex
	subjects map[string]*Subject

	workers     int
	timeout     time.Duration
	skipMissing bool
	log         *slog.Logger
	subjectOpts []Option
}

// NewManager returns an empty manager with DefaultWorkers workers, no
// per-subject timeout and missing files skipped.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		subjects:    make(map[string]*Subject),
		workers:     DefaultWorkers,
		skipMissing: true,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Add loads the tracing at path and registers it under id. A missing file
// is always an error here; only batch loads skip it.
//
// Errors: ErrSubjectExists, swc.ErrMissingInput, parse and build errors.
func (m *Manager) Add(id, path string) error {
	return m.add(context.Background(), id, path, false)
}

// Get returns the subject registered under id.
func (m *Manager) Get(id string) (*Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.subjects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSubjectNotFound, id)
	}

	return s, nil
}

// IDs returns every registered identifier, sorted ascending.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.subjects))
	for id := range m.subjects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Len returns the number of registered subjects.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.subjects)
}

// LoadAll loads every id -> path entry in parallel. The first failure
// cancels the remaining tasks and is returned; subjects registered before
// it stay registered. Missing files are skipped when the manager is so
// configured.
func (m *Manager) LoadAll(ctx context.Context, entries map[string]string) error {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for _, id := range ids {
		id, path := id, entries[id]
		g.Go(func() error {
			return m.add(ctx, id, path, m.skipMissing)
		})
	}

	return g.Wait()
}

// LoadDir loads every file in dir matching pattern, keyed by CaseID, and
// returns the number of subjects registered.
func (m *Manager) LoadDir(ctx context.Context, dir, pattern string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0, fmt.Errorf("subject: pattern %q: %w", pattern, err)
	}

	entries := make(map[string]string, len(files))
	for _, f := range files {
		id := CaseID(f)
		if prev, ok := entries[id]; ok {
			return 0, fmt.Errorf("%w: %q from %s and %s", ErrSubjectExists, id, prev, f)
		}
		entries[id] = f
	}

	before := m.Len()
	err = m.LoadAll(ctx, entries)
	n := m.Len() - before
	m.log.Info("directory loaded", "dir", dir, "pattern", pattern, "files", len(files), "subjects", n)

	return n, err
}

func (m *Manager) add(ctx context.Context, id, path string, skipMissing bool) error {
	m.mu.RLock()
	_, exists := m.subjects[id]
	m.mu.RUnlock()
	if exists {
		return fmt.Errorf("%w: %q", ErrSubjectExists, id)
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	opts := append([]Option{WithLogger(m.log)}, m.subjectOpts...)
	opts = append(opts, WithID(id))
	start := time.Now()
	s, err := Load(ctx, path, opts...)
	if err != nil {
		if skipMissing && errors.Is(err, swc.ErrMissingInput) {
			m.log.Warn("skipping missing tracing", "id", id, "path", path)
			return nil
		}
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subjects[id]; ok {
		return fmt.Errorf("%w: %q", ErrSubjectExists, id)
	}
	m.subjects[id] = s
	m.log.Debug("subject registered", "id", id, "elapsed", time.Since(start))

	return nil
}
