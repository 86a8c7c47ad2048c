package module

import (
	"github.com/tetratelabs/wazero/api"
)

// ImportName references a namespace and field name by index into a
// module's interned string tables.
type ImportName struct {
	NamespaceIdx uint32
	NameIdx      uint32
}

// Signature is a function import's ordered parameter and result types.
type Signature struct {
	Params  []api.ValueType
	Results []api.ValueType
}

// Limits bounds a table or memory import.
type Limits struct {
	Max *uint32
	Min uint32
}

// FunctionImport is one entry of the function import table.
type FunctionImport struct {
	ImportName
	Sig Signature
}

// TableImport is one entry of the table import table.
type TableImport struct {
	ImportName
	Limits Limits
}

// GlobalImport is one entry of the global import table.
type GlobalImport struct {
	ImportName
	Type    api.ValueType
	Mutable bool
}

// MemoryImport is one entry of the memory import table.
type MemoryImport struct {
	ImportName
	Limits Limits
}

// Info carries a compiled module's import tables and the two interned
// string tables their entries index into.
type Info struct {
	ImportedFunctions []FunctionImport
	ImportedTables    []TableImport
	ImportedGlobals   []GlobalImport
	ImportedMemories  []MemoryImport

	NamespaceTable *StringTable
	NameTable      *StringTable
}

// NewInfo creates an Info with empty tables.
func NewInfo() *Info {
	return &Info{
		NamespaceTable: NewStringTable(),
		NameTable:      NewStringTable(),
	}
}

// NumImports returns the summed length of the four import tables.
func (in *Info) NumImports() int {
	return len(in.ImportedFunctions) +
		len(in.ImportedTables) +
		len(in.ImportedGlobals) +
		len(in.ImportedMemories)
}

// Name interns a (namespace, name) pair and returns the index pair.
func (in *Info) Name(namespace, name string) ImportName {
	return ImportName{
		NamespaceIdx: in.NamespaceTable.Intern(namespace),
		NameIdx:      in.NameTable.Intern(name),
	}
}
