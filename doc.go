// Package wasmimports provides the import registry and descriptor bridge
// used to supply a WebAssembly module's imports from a host program.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wasmimports/     Root package with opaque Memory, Table and Global handles
//	├── entity/      The closed set of importable entity kinds
//	├── registry/    Namespace-keyed mapping from field name to entity
//	├── ffi/         Boundary records and explicit ownership transfer
//	├── module/      Import tables and interned string tables of a compiled module
//	├── descriptor/  Resolves a module's expected imports into named descriptors
//	├── wasm/        Minimal binary scanner for the type and import sections
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Inspect what a compiled module expects, then supply it:
//
//	info, err := wasm.ScanImports(wasmBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	descs, err := descriptor.FromModule(info)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < descs.Len(); i++ {
//	    d := descs.At(i)
//	    fmt.Println(d.Kind(), d.ModuleName(), d.Name())
//	}
//
//	reg := registry.New()
//	defer reg.Close()
//	reg.Insert("env", "log", entity.NewFunction(logFn,
//	    []api.ValueType{api.ValueTypeI32}, nil))
//
// # Thread Safety
//
// Nothing in this library synchronizes internally. A Registry, a
// descriptor List, and the ffi package's last-error slot must each be
// confined to a single goroutine, or access must be serialized by the
// caller.
//
// # Ownership Model
//
// Every entity clone handed across the ffi boundary is a fresh,
// independently owned allocation with exactly one matching teardown call:
// ffi.ImportsDestroy for arrays produced by ffi.GetFunctions, and
// Value.Close for single transfers. Releasing twice, or releasing records
// this library did not produce, is undefined.
package wasmimports
