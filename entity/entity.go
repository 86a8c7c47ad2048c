package entity

import (
	wasmimports "github.com/hostbridge/wasm-imports"
)

// Entity is the closed sum over the four importable kinds. The concrete
// types are *Function, *Global, *Memory and *Table; no other
// implementations exist.
type Entity interface {
	Kind() Kind

	// Clone duplicates the handle. The clone is independently owned and
	// must be closed separately.
	Clone() Entity

	Close() error
}

// Memory wraps an opaque linear-memory handle.
type Memory struct {
	Handle wasmimports.Memory
}

func NewMemory(h wasmimports.Memory) *Memory {
	return &Memory{Handle: h}
}

func (m *Memory) Kind() Kind { return KindMemory }

func (m *Memory) Clone() Entity {
	return &Memory{Handle: m.Handle.Clone()}
}

func (m *Memory) Close() error { return m.Handle.Close() }

// Table wraps an opaque indirect-call table handle.
type Table struct {
	Handle wasmimports.Table
}

func NewTable(h wasmimports.Table) *Table {
	return &Table{Handle: h}
}

func (t *Table) Kind() Kind { return KindTable }

func (t *Table) Clone() Entity {
	return &Table{Handle: t.Handle.Clone()}
}

func (t *Table) Close() error { return t.Handle.Close() }

// Global wraps an opaque value-cell handle.
type Global struct {
	Handle wasmimports.Global
}

func NewGlobal(h wasmimports.Global) *Global {
	return &Global{Handle: h}
}

func (g *Global) Kind() Kind { return KindGlobal }

func (g *Global) Clone() Entity {
	return &Global{Handle: g.Handle.Clone()}
}

func (g *Global) Close() error { return g.Handle.Close() }
