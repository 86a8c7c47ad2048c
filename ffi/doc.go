// Package ffi defines the boundary shape used to move entities between
// a registry and a host that shares no types with the runtime: a flat
// Import record carrying namespace bytes, name bytes, a kind tag and a
// tagged value slot.
//
// # Ownership
//
// Crossing the boundary transfers ownership explicitly. Each record
// written by GetFunctions owns three allocations — its namespace bytes,
// its name bytes and its boxed entity clone — and ImportsDestroy must be
// called exactly once per produced array to reclaim them. A single
// transfer via GetImport produces one boxed clone, reclaimed by closing
// the value slot. Partial release leaks; releasing twice is undefined.
//
// The package counts outstanding boundary allocations; Live reports the
// count so tests can assert that a teardown left nothing behind.
//
// # Errors
//
// Fallible operations return an error and record its message in a
// package-level last-error slot, retrievable with LastError. The whole
// package is single-threaded by contract; nothing here locks.
package ffi
