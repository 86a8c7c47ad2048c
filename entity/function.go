package entity

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/hostbridge/wasm-imports/errors"
)

// CallContext describes what context a function handler is invoked with.
type CallContext uint8

const (
	// CallNone means the handler carries no calling context.
	CallNone CallContext = iota
	// CallInternal means the handler runs against the instance's own
	// context with no user data threaded through.
	CallInternal
	// CallExternal means the handler carries an opaque user-data value.
	CallExternal
)

// Function is an invocable entity with a fixed signature.
type Function struct {
	handler api.GoModuleFunc
	data    any
	params  []api.ValueType
	results []api.ValueType
	context CallContext
}

// NewFunction constructs a function entity from a raw handler and its
// ordered parameter and result types. The calling context is internal.
// The type slices are copied.
func NewFunction(handler api.GoModuleFunc, params, results []api.ValueType) *Function {
	return &Function{
		handler: handler,
		params:  append([]api.ValueType(nil), params...),
		results: append([]api.ValueType(nil), results...),
		context: CallInternal,
	}
}

// NewFunctionWithData constructs a function entity whose handler is
// invoked with an opaque user-data value (external calling context).
func NewFunctionWithData(handler api.GoModuleFunc, data any, params, results []api.ValueType) *Function {
	f := NewFunction(handler, params, results)
	f.context = CallExternal
	f.data = data
	return f
}

func (f *Function) Kind() Kind { return KindFunction }

// Clone duplicates the function handle. The signature is immutable and
// shared between clones.
func (f *Function) Clone() Entity {
	c := *f
	return &c
}

func (f *Function) Close() error { return nil }

// Handler returns the raw invocable handler.
func (f *Function) Handler() api.GoModuleFunc { return f.handler }

// Context returns the calling context.
func (f *Function) Context() CallContext { return f.context }

// Data returns the user-data value for external-context functions,
// or nil.
func (f *Function) Data() any { return f.data }

// ParamArity returns the number of parameters.
func (f *Function) ParamArity() int { return len(f.params) }

// ResultArity returns the number of results.
func (f *Function) ResultArity() int { return len(f.results) }

// Params returns the ordered parameter types. The slice is borrowed and
// must not be mutated.
func (f *Function) Params() []api.ValueType { return f.params }

// Results returns the ordered result types. The slice is borrowed and
// must not be mutated.
func (f *Function) Results() []api.ValueType { return f.results }

// AsFunction returns e as a *Function, or a type-mismatch error when e
// has any other kind. Introspection helpers below go through this check
// so a caller holding a non-function entity gets an error instead of
// garbage.
func AsFunction(e Entity) (*Function, error) {
	if e == nil {
		return nil, errors.NilPointer(errors.PhaseBridge, "entity")
	}
	f, ok := e.(*Function)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseBridge, e.Kind().String())
	}
	return f, nil
}

// ParamArity returns the parameter count of a function entity.
func ParamArity(e Entity) (int, error) {
	f, err := AsFunction(e)
	if err != nil {
		return 0, err
	}
	return f.ParamArity(), nil
}

// ResultArity returns the result count of a function entity.
func ResultArity(e Entity) (int, error) {
	f, err := AsFunction(e)
	if err != nil {
		return 0, err
	}
	return f.ResultArity(), nil
}

// ParamTypes returns the ordered parameter types of a function entity.
func ParamTypes(e Entity) ([]api.ValueType, error) {
	f, err := AsFunction(e)
	if err != nil {
		return nil, err
	}
	return f.Params(), nil
}

// ResultTypes returns the ordered result types of a function entity.
func ResultTypes(e Entity) ([]api.ValueType, error) {
	f, err := AsFunction(e)
	if err != nil {
		return nil, err
	}
	return f.Results(), nil
}
