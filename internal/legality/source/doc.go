// Package source holds the process-wide, read-only move-source tables that
// legality checks consult: per-version level-up, machine, tutor, and egg
// move sets keyed by species and form, plus the per-species metadata needed
// to expand multi-form lookups.
//
// A Registry is populated once, before any check runs, and is never mutated
// afterwards. Concurrent reads require no synchronization.
package source
