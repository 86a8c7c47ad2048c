package wasmimports

// Memory is an opaque handle to a linear memory owned by the embedding
// runtime. Clone duplicates the handle, never the underlying contents.
type Memory interface {
	Clone() Memory
	Close() error
}

// Table is an opaque handle to an indirect-call table.
type Table interface {
	Clone() Table
	Close() error
}

// Global is an opaque handle to a single value cell.
type Global interface {
	Clone() Global
	Close() error
}
