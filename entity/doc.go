// Package entity defines the closed set of importable entity kinds:
// Function, Global, Memory and Table.
//
// An entity is a cheap handle. Clone duplicates the handle, never the
// underlying resource; Close releases the handle. Function entities
// additionally expose signature introspection, and can be constructed
// from a raw handler plus ordered parameter and result value types.
package entity
