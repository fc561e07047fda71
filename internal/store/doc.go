// Package store provides the process-wide zone-rules registry and the
// sources that feed it.
//
// The Registry maps zone identifiers to immutable *zone.Rules. It is
// populated exactly once: the first Init call wins and every later one
// fails with ErrAlreadyInitialized, so zone data cannot change shape
// mid-process. Lookups are concurrency-safe and cache rules per zone.
// Fixed offset spellings such as "Z" or "+02:00" resolve without any
// registration at all.
//
// The package includes sources for:
//   - Compiled archives on disk (FileSource)
//   - SQLite databases (SQLiteSource)
//   - In-memory maps, for tests and embedding (MemorySource)
package store
