// Package descriptor enumerates the imports a compiled module expects,
// before instantiation, so the host knows what to supply.
//
// FromModule walks the four import tables in a fixed order — functions,
// tables, globals, memories — and resolves each entry's interned indices
// into owned string copies. The resulting List is immutable, its
// descriptors' strings independent of the module's lifetime, and it is
// destroyed as a unit.
package descriptor
