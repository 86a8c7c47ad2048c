// Package wasm scans WebAssembly binaries for the metadata the
// descriptor resolver needs: the type section and the import section.
// It is not a loader or validator; everything past the import section
// is ignored.
package wasm
