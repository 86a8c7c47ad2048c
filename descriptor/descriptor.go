package descriptor

import (
	"strings"

	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/errors"
	"github.com/hostbridge/wasm-imports/module"
)

// Descriptor names one import a module expects: (module name, field
// name, kind). It carries no value.
type Descriptor struct {
	module string
	name   string
	kind   entity.Kind
}

// Name returns the field name. The string is owned by the list and
// valid for its lifetime.
func (d *Descriptor) Name() string { return d.name }

// ModuleName returns the namespace the import is expected from.
func (d *Descriptor) ModuleName() string { return d.module }

// Kind returns the import's entity kind.
func (d *Descriptor) Kind() entity.Kind { return d.kind }

// List is an ordered, immutable collection of import descriptors.
type List struct {
	items []Descriptor
}

// FromModule builds the descriptor list for a compiled module. Order is
// functions, then tables, then globals, then memories, each table in
// iteration order. Every descriptor's strings are fresh copies,
// decoupled from the module's interned storage.
func FromModule(info *module.Info) (*List, error) {
	if info == nil {
		return nil, errors.NilPointer(errors.PhaseResolve, "module info")
	}

	l := &List{items: make([]Descriptor, 0, info.NumImports())}

	for _, imp := range info.ImportedFunctions {
		if err := l.append(info, imp.ImportName, entity.KindFunction); err != nil {
			return nil, err
		}
	}
	for _, imp := range info.ImportedTables {
		if err := l.append(info, imp.ImportName, entity.KindTable); err != nil {
			return nil, err
		}
	}
	for _, imp := range info.ImportedGlobals {
		if err := l.append(info, imp.ImportName, entity.KindGlobal); err != nil {
			return nil, err
		}
	}
	for _, imp := range info.ImportedMemories {
		if err := l.append(info, imp.ImportName, entity.KindMemory); err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (l *List) append(info *module.Info, name module.ImportName, kind entity.Kind) error {
	ns, err := info.NamespaceTable.Get(name.NamespaceIdx)
	if err != nil {
		return err
	}
	field, err := info.NameTable.Get(name.NameIdx)
	if err != nil {
		return err
	}
	l.items = append(l.items, Descriptor{
		module: strings.Clone(ns),
		name:   strings.Clone(field),
		kind:   kind,
	})
	return nil
}

// Len returns the number of descriptors.
func (l *List) Len() int { return len(l.items) }

// At returns the descriptor at position i. Bounds are the caller's
// responsibility; out-of-range access panics.
func (l *List) At(i int) *Descriptor {
	return &l.items[i]
}

// Destroy releases the list and every descriptor's strings as a unit.
// Descriptors obtained from At must not be used afterwards.
func (l *List) Destroy() {
	l.items = nil
}
