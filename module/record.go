// Package module implements enough of the ECMAScript Module Record contract
// for Reference/GetValue and the Module Namespace exotic object to exercise
// real cross-module linking: ResolveExport with re-export cycle/ambiguity
// detection and caching, and lazy, memoized GetModuleNamespace. Grounded on
// the teacher's hive/link package (offset redirect resolution through a
// chain with cycle detection), generalized from a single redirect hop to
// ECMA-262's star-export resolution graph, and supplemented from
// original_source's abstract_module_records.rs (the pieces spec.md's
// condensed §4.3.1 omits).
package module

import (
	"fmt"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// indirectExport is one `export { local as name } from "other"` entry.
type indirectExport struct {
	module       *Record
	importedName string
}

// binding is a module environment's binding cell. A nil *binding pointer
// (the zero value of the map lookup) means the name isn't bound at all; a
// non-nil cell with initialized == false is a declared-but-TDZ binding.
type binding struct {
	value       value.Value
	initialized bool
}

// Record is a Source Text Module Record, simplified to the fields
// ResolveExport, GetModuleNamespace, and GetBindingValue need. Parsing and
// full module linking/evaluation are out of this core's scope (spec.md §1);
// a host builds Records directly via AddLocalExport/AddIndirectExport/
// AddStarExport, InitializeBinding and SetEnvironmentInstantiated as its
// linker sees fit.
type Record struct {
	Name string

	localExports    map[string]string // export name -> local binding name
	indirectExports map[string]indirectExport
	starExports     []*Record
	exportOrder     []string // declared order, local+indirect names only

	bindings map[string]*binding

	environmentReady bool

	resolveCache map[string]cachedResolution

	namespace    heap.ModuleHandle
	hasNamespace bool
}

type cachedResolution struct {
	binding heap.ResolvedBinding
	status  heap.ResolveStatus
}

// NewRecord returns an empty module record named name (for diagnostics —
// ResolveExport identity is by pointer, not name).
func NewRecord(name string) *Record {
	return &Record{
		Name:            name,
		localExports:    make(map[string]string),
		indirectExports: make(map[string]indirectExport),
		bindings:        make(map[string]*binding),
		resolveCache:    make(map[string]cachedResolution),
	}
}

// AddLocalExport declares `export { localName as exportName }` (or the
// `exportName == localName` shorthand).
func (m *Record) AddLocalExport(exportName, localName string) {
	m.localExports[exportName] = localName
	m.exportOrder = append(m.exportOrder, exportName)
	m.declareBinding(localName)
}

// AddIndirectExport declares `export { importedName as exportName } from
// other`.
func (m *Record) AddIndirectExport(exportName string, other *Record, importedName string) {
	m.indirectExports[exportName] = indirectExport{module: other, importedName: importedName}
	m.exportOrder = append(m.exportOrder, exportName)
}

// AddStarExport declares `export * from other`.
func (m *Record) AddStarExport(other *Record) {
	m.starExports = append(m.starExports, other)
}

func (m *Record) declareBinding(name string) {
	if _, ok := m.bindings[name]; !ok {
		m.bindings[name] = &binding{}
	}
}

// InitializeBinding sets name's value and marks it initialized. Panics (a
// fatal invariant violation, not a JsResult — spec §7) if the binding is
// already initialized or was never declared; ECMAScript guarantees each
// lexical binding is initialized exactly once.
func (m *Record) InitializeBinding(name string, v value.Value) {
	b, ok := m.bindings[name]
	if !ok {
		value.Invariant("module %q: InitializeBinding on undeclared binding %q", m.Name, name)
	}
	if b.initialized {
		value.Invariant("module %q: double-initialization of binding %q", m.Name, name)
	}
	b.value = v
	b.initialized = true
}

// SetEnvironmentInstantiated marks the module's environment as created; a
// namespace [[Get]] of an export whose target module hasn't reached this
// point throws ReferenceError per spec §4.3.1.
func (m *Record) SetEnvironmentInstantiated() { m.environmentReady = true }

// EnvironmentInstantiated implements heap.ModuleRecord.
func (m *Record) EnvironmentInstantiated() bool { return m.environmentReady }

// GetBindingValue implements heap.ModuleRecord: reads a local binding by
// name. Returns a ReferenceError for a TDZ (declared, not yet initialized)
// binding — ECMAScript's "Cannot access '<name>' before initialization".
func (m *Record) GetBindingValue(name string) (value.Value, error) {
	b, ok := m.bindings[name]
	if !ok {
		return value.Value{}, value.NewReferenceError(fmt.Sprintf("%s is not defined", name))
	}
	if !b.initialized {
		return value.Value{}, value.NewReferenceError(fmt.Sprintf("Cannot access '%s' before initialization", name))
	}
	return b.value, nil
}

// ExportedNames implements heap.ModuleRecord: the module's own + re-exported
// names, star-exported names deduplicated and appended after direct
// exports, in the order ECMA-262 15.2.1.16 GetExportedNames visits them.
// The visited set breaks `export * from` cycles the way the teacher's
// hive/link package breaks redirect-chain cycles.
func (m *Record) ExportedNames() []string {
	return m.exportedNames(make(map[*Record]bool))
}

func (m *Record) exportedNames(visited map[*Record]bool) []string {
	if visited[m] {
		return nil
	}
	visited[m] = true

	names := append([]string(nil), m.exportOrder...)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, star := range m.starExports {
		for _, n := range star.exportedNames(visited) {
			if n == "default" || seen[n] {
				continue
			}
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// ResolveExport implements heap.ModuleRecord per ECMA-262 15.2.1.17,
// simplified to this core's scope: no ModuleRequest phase, re-exports are
// already-linked *Record pointers. Results are cached (the spec explicitly
// permits this since ResolveExport is side-effect-free, spec §9).
func (m *Record) ResolveExport(name string) (heap.ResolvedBinding, heap.ResolveStatus) {
	if cached, ok := m.resolveCache[name]; ok {
		return cached.binding, cached.status
	}
	rb, status := m.resolveExport(name, make(map[resolveKey]bool))
	m.resolveCache[name] = cachedResolution{binding: rb, status: status}
	return rb, status
}

type resolveKey struct {
	module *Record
	name   string
}

func (m *Record) resolveExport(name string, visited map[resolveKey]bool) (heap.ResolvedBinding, heap.ResolveStatus) {
	key := resolveKey{m, name}
	if visited[key] {
		// circular import of the same name: per spec this resolves to null,
		// which the caller (the next level up) treats as simply "no
		// resolution from this branch" — not an ambiguity by itself.
		return heap.ResolvedBinding{}, heap.ResolveNotFound
	}
	visited[key] = true

	if local, ok := m.localExports[name]; ok {
		return heap.ResolvedBinding{Module: m, BindingName: local}, heap.ResolveOK
	}
	if ind, ok := m.indirectExports[name]; ok {
		return ind.module.resolveExport(ind.importedName, visited)
	}
	if name == "default" {
		return heap.ResolvedBinding{}, heap.ResolveNotFound
	}

	var found *heap.ResolvedBinding
	for _, star := range m.starExports {
		rb, status := star.resolveExport(name, visited)
		switch status {
		case heap.ResolveAmbiguous:
			return heap.ResolvedBinding{}, heap.ResolveAmbiguous
		case heap.ResolveOK:
			if found == nil {
				found = &rb
			} else if found.Module != rb.Module || found.BindingName != rb.BindingName {
				return heap.ResolvedBinding{}, heap.ResolveAmbiguous
			}
		}
	}
	if found != nil {
		return *found, heap.ResolveOK
	}
	return heap.ResolvedBinding{}, heap.ResolveNotFound
}
