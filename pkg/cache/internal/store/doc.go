// Package store provides the concurrent maps backing the cache.
//
// Entries live in per-key cells on top of a sharded map. The shard lock is
// held only to find, create or unlink a cell; reads and writes of a value
// hold that cell's own lock, so writers to different keys never contend and
// a mutation of one key is atomic with respect to every other accessor of
// that key.
//
// Lock order: a cell may be held while touching a different map, never while
// touching its own map. Unlinking a cell takes its shard lock and then the
// cell lock, and marks the cell dead so a writer that loaded it before the
// unlink retries against a fresh cell.
package store
