// Package module models the import metadata of a compiled WebAssembly
// module: four ordered import tables whose entries reference two
// interned string tables by integer index.
//
// The loader that populates an Info is external; this package only
// defines the data surface the descriptor resolver consumes, plus the
// append-only string tables with bounds-checked lookup. Indices from one
// module's tables must never be used against another module's tables.
package module
