package ffi

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/errors"
	"github.com/hostbridge/wasm-imports/registry"
)

// GetImport looks (namespace, name) up in the registry and, when the
// entity's kind matches tag, writes a boxed clone into slot and copies
// slot plus the namespace/name bytes into out. The caller supplies both
// the record and the slot storage; the bridge allocates only the boxed
// clone, reclaimed by closing the slot (the record's slot aliases it —
// close one, not both).
//
// On any failure out and slot are left untouched.
func GetImport(reg *registry.Registry, namespace, name []byte, out *Import, slot *Value, tag entity.Kind) error {
	if reg == nil {
		return fail(errors.NilPointer(errors.PhaseBridge, "registry"))
	}
	if out == nil || slot == nil {
		return fail(errors.NilPointer(errors.PhaseBridge, "import record and value slot"))
	}
	if !tag.Valid() {
		return fail(errors.InvalidData(errors.PhaseBridge, "kind tag out of range"))
	}
	if !utf8.Valid(namespace) {
		return fail(errors.InvalidUTF8(errors.PhaseBridge, "namespace", namespace))
	}
	if !utf8.Valid(name) {
		return fail(errors.InvalidUTF8(errors.PhaseBridge, "name", name))
	}

	ns, field := string(namespace), string(name)
	e, ok := reg.Lookup(ns, field)
	if !ok {
		return fail(errors.NotFound(errors.PhaseBridge, ns, field))
	}
	if e.Kind() != tag {
		return fail(errors.Mismatch(errors.PhaseBridge, ns, field,
			e.Kind().String(), tag.String()))
	}

	boxed := e.Clone()
	track()

	slot.boxed = boxed
	slot.tag = tag

	out.Value = *slot
	out.Tag = tag
	out.ModuleName = namespace
	out.ImportName = name

	return nil
}

// GetFunctions enumerates every function-kind entry into out, each
// record independently owning fresh namespace bytes, name bytes and a
// boxed entity clone. When the registry holds more functions than out
// can take, enumeration stops at capacity and the partial count is
// returned. Returns -1 when the registry or the output array is absent.
//
// Call ImportsDestroy exactly once on the written prefix to reclaim the
// allocations.
func GetFunctions(reg *registry.Registry, out []Import) int {
	if reg == nil || out == nil {
		fail(errors.NilPointer(errors.PhaseBridge, "registry and output array"))
		return -1
	}

	entries := make([]registry.FuncEntry, len(out))
	n := reg.EnumerateFunctions(entries)

	for i := 0; i < n; i++ {
		ns := []byte(entries[i].Namespace)
		track()
		name := []byte(entries[i].Name)
		track()
		boxed := entries[i].Function.Clone()
		track()

		out[i] = Import{
			ModuleName: ns,
			ImportName: name,
			Tag:        entity.KindFunction,
			Value:      Value{boxed: boxed, tag: entity.KindFunction},
		}
	}

	Logger().Debug("transferred functions", zap.Int("count", n))
	return n
}

// Extend reconstructs an entity from each record — cloning the handle or
// boxed function its slot references — and merges the resulting triples
// into the registry. Decoding is all-or-nothing: any record with invalid
// UTF-8 namespace/name bytes, an empty slot, or a tag disagreeing with
// its slot fails the whole call with the registry unmodified. Duplicate
// (namespace, name) pairs follow the registry's last-write-wins policy.
func Extend(reg *registry.Registry, imports []Import) error {
	if reg == nil {
		return fail(errors.NilPointer(errors.PhaseBridge, "registry"))
	}

	records := make([]registry.Record, 0, len(imports))
	abort := func(err error) error {
		for _, rec := range records {
			rec.Entity.Close()
		}
		return fail(err)
	}

	for i := range imports {
		imp := &imports[i]
		if !utf8.Valid(imp.ModuleName) {
			return abort(errors.InvalidUTF8(errors.PhaseBridge, "namespace", imp.ModuleName))
		}
		if !utf8.Valid(imp.ImportName) {
			return abort(errors.InvalidUTF8(errors.PhaseBridge, "name", imp.ImportName))
		}
		ns, field := string(imp.ModuleName), string(imp.ImportName)

		boxed := imp.Value.Entity()
		if boxed == nil {
			return abort(errors.New(errors.PhaseBridge, errors.KindNilPointer).
				At(ns, field).
				Detail("value slot is empty").
				Build())
		}
		if boxed.Kind() != imp.Tag {
			return abort(errors.Mismatch(errors.PhaseBridge, ns, field,
				boxed.Kind().String(), imp.Tag.String()))
		}

		records = append(records, registry.Record{
			Namespace: ns,
			Name:      field,
			Entity:    boxed.Clone(),
		})
	}

	if err := reg.Merge(records); err != nil {
		return abort(err)
	}
	return nil
}
