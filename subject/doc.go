// SPDX-License-Identifier: MIT

// Package subject ties the pipeline together for one tracing file and for
// collections of them.
//
// A Subject reads a tracing, builds its artery graph and keeps the
// per-vessel feature table. Summaries, graph metrics and the 3D scene are
// derived on demand.
//
// A Manager is a registry of subjects keyed by case identifier. LoadAll
// and LoadDir build subjects in parallel, one subject per task, with a
// bounded number of workers and an optional per-subject timeout. Subjects
// share no mutable state, so each task owns its graph exclusively.
//
//	m := subject.NewManager(subject.WithWorkers(8))
//	n, err := m.LoadDir(ctx, "data/BRAVE", "*.swc")
//	s, _ := m.Get("BRAVE: 0042")
//	flat, _ := s.MorphologicalFeatures()
package subject
