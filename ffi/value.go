package ffi

import (
	"go.uber.org/multierr"

	"github.com/hostbridge/wasm-imports/entity"
)

// Value is the tagged slot that carries exactly one entity across the
// boundary. Internally it is a closed sum: the tag selects which kind
// the boxed entity has, and nothing else is ever stored.
type Value struct {
	boxed entity.Entity
	tag   entity.Kind
}

// NewValue wraps an entity the caller owns into a slot suitable for
// Extend. Ownership stays with the caller; Extend clones out of it.
func NewValue(e entity.Entity) Value {
	return Value{boxed: e, tag: e.Kind()}
}

// Tag returns the kind selecting the slot's contents.
func (v *Value) Tag() entity.Kind { return v.tag }

// Entity returns the boxed entity, or nil for an empty slot.
func (v *Value) Entity() entity.Entity { return v.boxed }

// Close reclaims a slot filled by GetImport: it releases the boxed
// clone and empties the slot. Closing an empty slot is a no-op; closing
// a slot the bridge did not fill, or closing the same allocation through
// both an aliasing record and its slot, is undefined.
func (v *Value) Close() error {
	if v.boxed == nil {
		return nil
	}
	err := v.boxed.Close()
	v.boxed = nil
	untrack()
	return err
}

// Import is the flat, boundary-stable record: namespace bytes, name
// bytes, a kind tag, and the value slot. String data is a byte slice
// with explicit length, never NUL-terminated.
type Import struct {
	ModuleName []byte
	ImportName []byte
	Value      Value
	Tag        entity.Kind
}

// ImportsDestroy reclaims an array produced by GetFunctions: for every
// record it releases the namespace bytes, the name bytes and the boxed
// entity referenced by the value slot. It must be called exactly once
// per produced array; calling it on records the bridge did not produce,
// or calling it twice, is undefined.
func ImportsDestroy(imports []Import) error {
	var err error
	for i := range imports {
		rec := &imports[i]
		if rec.ModuleName != nil {
			rec.ModuleName = nil
			untrack()
		}
		if rec.ImportName != nil {
			rec.ImportName = nil
			untrack()
		}
		err = multierr.Append(err, rec.Value.Close())
	}
	return err
}
