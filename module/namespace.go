package module

import (
	"sort"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// TryGetModuleNamespace returns the module's cached namespace object without
// allocating, or reports that allocation is needed (spec §4.2's try_*/
// internal_* split applied to the one allocating step of an otherwise-pure
// operation).
func TryGetModuleNamespace(m *Record) value.TryResult[value.Value] {
	if m.hasNamespace {
		return value.Continue(value.ObjectValue(value.KindModuleNamespace, uint32(m.namespace)))
	}
	return value.Break[value.Value]()
}

// GetModuleNamespace returns m's Module Namespace exotic object, creating and
// memoizing it on first access (spec §9's ResolveExport/namespace caching
// note, and §4.3.1's namespace construction). The exports list is the sorted
// set of names that resolve unambiguously, per ECMA-262 15.2.1.26
// GetModuleNamespace.
func GetModuleNamespace(h *heap.Heap, scope heap.GcScope, m *Record) value.Value {
	if r := TryGetModuleNamespace(m); !r.NeedsGC() {
		return r.Value()
	}

	var exports []string
	for _, name := range m.ExportedNames() {
		if _, status := m.ResolveExport(name); status == heap.ResolveOK {
			exports = append(exports, name)
		}
	}
	sort.Strings(exports)

	data := &heap.ModuleNamespaceHeapData{
		Module:   m,
		Exports:  exports,
		Ordinary: heap.NewOrdinaryObjectData(value.Null, true),
	}
	data.Ordinary.Extensible = false

	handle := h.AllocModuleNamespace(data)
	m.namespace = handle
	m.hasNamespace = true

	return value.ObjectValue(value.KindModuleNamespace, uint32(handle))
}

// Namespace implements heap.ModuleRecord.Namespace.
func (m *Record) Namespace(h *heap.Heap, scope heap.GcScope) value.Value {
	return GetModuleNamespace(h, scope, m)
}
