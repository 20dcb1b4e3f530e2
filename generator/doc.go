// Package generator keeps the per-process state that the pure generators in
// uuidx and uuidx/draft leave to the caller: the last timestamp,
// the clock sequence and the node identifier. Every type here is safe for
// concurrent use. Nothing is persisted and nothing is coordinated across
// processes.
package generator
