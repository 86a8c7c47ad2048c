package registry

import (
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/errors"
)

// Record is one (namespace, name, entity) triple for bulk merging.
type Record struct {
	Namespace string
	Name      string
	Entity    entity.Entity
}

// FuncEntry is one function-kind registry entry written by
// EnumerateFunctions.
type FuncEntry struct {
	Namespace string
	Name      string
	Function  *entity.Function
}

// namespace holds one namespace's entities in insertion order.
type namespace struct {
	entities map[string]entity.Entity
	order    []string
}

// Registry maps namespace → field name → entity.
type Registry struct {
	namespaces map[string]*namespace
	order      []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		namespaces: make(map[string]*namespace),
	}
}

// Lookup returns the entity registered under (ns, name). The entity is
// not cloned; callers wanting an owned copy clone it themselves.
func (r *Registry) Lookup(ns, name string) (entity.Entity, bool) {
	n, ok := r.namespaces[ns]
	if !ok {
		return nil, false
	}
	e, ok := n.entities[name]
	return e, ok
}

// Insert registers e under (ns, name), overwriting and closing any
// entity already there. The registry takes ownership of e.
func (r *Registry) Insert(ns, name string, e entity.Entity) {
	n, ok := r.namespaces[ns]
	if !ok {
		n = &namespace{entities: make(map[string]entity.Entity)}
		r.namespaces[ns] = n
		r.order = append(r.order, ns)
	}
	if old, ok := n.entities[name]; ok {
		if err := old.Close(); err != nil {
			Logger().Warn("close displaced entity",
				zap.String("namespace", ns),
				zap.String("name", name),
				zap.Error(err))
		}
	} else {
		n.order = append(n.order, name)
	}
	n.entities[name] = e
}

// Merge inserts every record into the registry. The policy is
// all-or-nothing: every record's namespace and name are validated as
// UTF-8 before any is applied, so an invalid_utf8 failure leaves the
// registry unmodified. Within the batch, the last write for a duplicate
// (namespace, name) pair wins.
func (r *Registry) Merge(records []Record) error {
	for _, rec := range records {
		if !utf8.ValidString(rec.Namespace) {
			return errors.InvalidUTF8(errors.PhaseRegistry, "namespace", []byte(rec.Namespace))
		}
		if !utf8.ValidString(rec.Name) {
			return errors.InvalidUTF8(errors.PhaseRegistry, "name", []byte(rec.Name))
		}
	}
	for _, rec := range records {
		r.Insert(rec.Namespace, rec.Name, rec.Entity)
	}
	Logger().Debug("merged imports", zap.Int("count", len(records)))
	return nil
}

// EnumerateFunctions writes function-kind entries into buf, in insertion
// order, skipping other kinds. When the registry holds more functions
// than buf can take, enumeration stops at capacity and the count written
// so far is returned; the caller detects truncation by comparing against
// NumFunctions.
func (r *Registry) EnumerateFunctions(buf []FuncEntry) int {
	i := 0
	for _, ns := range r.order {
		n := r.namespaces[ns]
		for _, name := range n.order {
			f, ok := n.entities[name].(*entity.Function)
			if !ok {
				continue
			}
			if i >= len(buf) {
				return i
			}
			buf[i] = FuncEntry{Namespace: ns, Name: name, Function: f}
			i++
		}
	}
	return i
}

// NumFunctions returns the total number of function-kind entries.
func (r *Registry) NumFunctions() int {
	count := 0
	for _, n := range r.namespaces {
		for _, e := range n.entities {
			if e.Kind() == entity.KindFunction {
				count++
			}
		}
	}
	return count
}

// Len returns the total number of entries across all namespaces.
func (r *Registry) Len() int {
	count := 0
	for _, n := range r.namespaces {
		count += len(n.entities)
	}
	return count
}

// Close releases every entity the registry owns and empties it. The
// registry remains usable afterwards.
func (r *Registry) Close() error {
	var err error
	for _, ns := range r.order {
		n := r.namespaces[ns]
		for _, name := range n.order {
			err = multierr.Append(err, n.entities[name].Close())
		}
	}
	r.namespaces = make(map[string]*namespace)
	r.order = nil
	return err
}
