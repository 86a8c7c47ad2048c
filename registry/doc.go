// Package registry implements the namespace-keyed import mapping a host
// populates before instantiation.
//
// A Registry maps namespace → field name → entity. It owns the entities
// it holds: inserting over an existing key closes the displaced entity,
// and Close releases everything. Iteration follows insertion order, so
// bounded enumeration is deterministic.
//
// A Registry is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally.
package registry
