// Package object implements the ordinary-object internal methods every
// exotic kind delegates to for its property-table-backed "upgrade store"
// (spec §4.3): get_prototype_of, set_prototype_of, is_extensible,
// prevent_extensions, get_own_property, define_own_property, has_property,
// get, set, delete, own_property_keys. GetPrototypeOf, SetPrototypeOf,
// IsExtensible, PreventExtensions, GetOwnProperty, DefineOwnProperty,
// Delete and OwnPropertyKeys also have a Try form returning a
// value.TryResult; the Try forms take no scope argument. Get, Set and
// HasProperty have only the full (GcScope) form in this package. The split
// mirrors the teacher's ReadOnlyIndex/Index split between a lookup that
// never mutates and one that may grow the backing store.
//
// Grounded on hive/index (ordered key lookup) for the property-table walk
// and hive/values.List for the insertion-order bookkeeping PropertyTable
// already implements in package heap; this package is the dispatch layer
// ECMA-262 calls OrdinaryGet/OrdinarySet/OrdinaryDefineOwnProperty/etc.
package object
