// Package store persists per-hunk review decisions between CLI invocations.
//
// Entries are JSON files keyed by a SHA-256 fingerprint of the original and
// revised snapshots, so a stored decision set is only ever reloaded against
// the exact text pair it was recorded for. Missing or corrupt entries behave
// as misses.
package store
