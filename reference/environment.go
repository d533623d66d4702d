// Package reference implements the Reference Record (ECMA-262 6.2.5) and the
// GetValue/PutValue abstract operations that glue expression evaluation to
// heap-stored bindings (spec §4.4), plus the Environment Record hierarchy a
// Reference's environment-kind base resolves against. Grounded on the
// teacher's internal/repair transaction log (a name -> cell lookup with an
// explicit "not yet committed" state mirroring TDZ), generalized from
// registry value cells to lexical bindings.
package reference

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// Environment is the subset of ECMA-262's Environment Record contract
// GetValue/PutValue/InitializeReferencedBinding need. Declarative and
// Object environment records (and the Global environment composing both)
// implement it; the external interpreter supplies whichever concrete
// environment a lexical scope uses.
type Environment interface {
	// HasBinding reports whether name is bound in this environment record
	// (not walking Outer).
	HasBinding(name string) bool
	// GetBindingValue reads name's value. strict selects whether an unset
	// (TDZ) or unresolved binding throws or returns a default — mirrors
	// ECMA-262's per-kind GetBindingValue(N, S).
	GetBindingValue(name string, strict bool) (value.Value, error)
	// SetMutableBinding writes name's value, creating it (sloppy mode
	// global environments only) or throwing per strict/configurability
	// rules.
	SetMutableBinding(name string, v value.Value, strict bool) error
	// InitializeBinding performs the one-time TDZ-clearing initialization
	// a `let`/`const`/function-parameter binding requires.
	InitializeBinding(name string, v value.Value) error
	// DeleteBinding implements the `delete` operator on an environment
	// reference (supplemented beyond spec.md's condensed §4.4 from
	// original_source's reference.rs, which defines it alongside
	// IsUnresolvableReference/IsPropertyReference).
	DeleteBinding(name string) (bool, error)
	// WithBaseObject returns the environment's binding object and true for
	// an Object Environment Record with a non-null base; false otherwise.
	// Needed by `this`-value resolution for `with` statement bindings,
	// out of this core's interpreter scope but kept for completeness.
	WithBaseObject() (value.Value, bool)
	// Outer returns the lexically enclosing environment, or nil for the
	// outermost (global) environment.
	Outer() Environment
}

// bindingCell is one declarative binding's storage: its current value, a
// mutability flag, and a TDZ flag distinguishing "declared but not yet
// initialized" from "initialized". Mirrors the teacher's internal/repair
// transaction binding cell (declared-uncommitted vs. committed).
type bindingCell struct {
	value       value.Value
	mutable     bool
	initialized bool
}

// DeclarativeEnvironment backs function scopes, block scopes, and catch
// clauses: a flat name -> cell table with no associated object.
type DeclarativeEnvironment struct {
	outer    Environment
	bindings map[string]*bindingCell
}

// NewDeclarativeEnvironment returns an empty declarative environment whose
// Outer() is outer (nil for a standalone/test environment).
func NewDeclarativeEnvironment(outer Environment) *DeclarativeEnvironment {
	return &DeclarativeEnvironment{outer: outer, bindings: make(map[string]*bindingCell)}
}

func (e *DeclarativeEnvironment) Outer() Environment { return e.outer }

func (e *DeclarativeEnvironment) HasBinding(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// CreateMutableBinding declares an uninitialized (TDZ) mutable binding —
// the `let`/`var`-hoisting step that precedes InitializeBinding.
func (e *DeclarativeEnvironment) CreateMutableBinding(name string) {
	if _, ok := e.bindings[name]; !ok {
		e.bindings[name] = &bindingCell{mutable: true}
	}
}

// CreateImmutableBinding declares an uninitialized `const` binding.
func (e *DeclarativeEnvironment) CreateImmutableBinding(name string) {
	if _, ok := e.bindings[name]; !ok {
		e.bindings[name] = &bindingCell{mutable: false}
	}
}

func (e *DeclarativeEnvironment) GetBindingValue(name string, strict bool) (value.Value, error) {
	b, ok := e.bindings[name]
	if !ok {
		return value.Value{}, value.NewReferenceError("%s is not defined", name)
	}
	if !b.initialized {
		return value.Value{}, value.NewReferenceError("Cannot access '%s' before initialization", name)
	}
	return b.value, nil
}

func (e *DeclarativeEnvironment) SetMutableBinding(name string, v value.Value, strict bool) error {
	b, ok := e.bindings[name]
	if !ok {
		if strict {
			return value.NewReferenceError("%s is not defined", name)
		}
		e.bindings[name] = &bindingCell{value: v, mutable: true, initialized: true}
		return nil
	}
	if !b.initialized {
		return value.NewReferenceError("Cannot access '%s' before initialization", name)
	}
	if !b.mutable {
		return value.NewTypeError("Assignment to constant variable '%s'", name)
	}
	b.value = v
	return nil
}

// InitializeBinding implements spec §4.4's InitializeReferencedBinding
// target. Panics (an Invariant, not a JsResult) on double-initialization or
// an undeclared name — ECMAScript guarantees each lexical binding is
// initialized exactly once, by construction of the interpreter's hoisting
// pass, never by user-observable control flow.
func (e *DeclarativeEnvironment) InitializeBinding(name string, v value.Value) error {
	b, ok := e.bindings[name]
	if !ok {
		value.Invariant("DeclarativeEnvironment: InitializeBinding on undeclared binding %q", name)
	}
	if b.initialized {
		value.Invariant("DeclarativeEnvironment: double-initialization of binding %q", name)
	}
	b.value = v
	b.initialized = true
	return nil
}

func (e *DeclarativeEnvironment) DeleteBinding(name string) (bool, error) {
	if _, ok := e.bindings[name]; !ok {
		return true, nil
	}
	// Declarative bindings created by let/const/function declarations are
	// not configurable; only `var`-created bindings promoted into a
	// function environment would be, which this simplified environment
	// does not distinguish, matching the conservative "undeletable by
	// default" ECMAScript behavior for lexical bindings.
	return false, nil
}

func (e *DeclarativeEnvironment) WithBaseObject() (value.Value, bool) { return value.Value{}, false }

// ObjectEnvironment backs `with` statement bindings and the global
// environment's object component: bindings are properties of BindingObject
// rather than cells in a private table.
type ObjectEnvironment struct {
	outer         Environment
	BindingObject value.Value
	IsWithEnv     bool

	heap *heap.Heap
	get  GetFn
	set  SetFn
	has  HasFn
	del  DeleteFn

	// longKeys interns the heap string handle allocated for each binding
	// name that doesn't fit inline as a SmallString, so repeated lookups of
	// the same name (Set then Get, or Has then Get) resolve to the same
	// PropertyTable entry instead of each allocating a fresh, distinct
	// StringHandle for identical content.
	longKeys map[string]value.PropertyKey
}

type (
	GetFn    func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value) (value.Value, error)
	SetFn    func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, v value.Value, receiver value.Value) (bool, error)
	HasFn    func(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey) (bool, error)
	DeleteFn func(h *heap.Heap, obj value.Value, key value.PropertyKey) bool
)

// NewObjectEnvironment binds name lookups onto bindingObject's properties,
// via the top-level exotic dispatcher's Get/Set/HasProperty/Delete (passed
// in rather than imported, so this package has no dependency on package
// exotic — the "glue", not the object model itself, per spec §1).
func NewObjectEnvironment(h *heap.Heap, outer Environment, bindingObject value.Value, isWithEnv bool, get GetFn, set SetFn, has HasFn, del DeleteFn) *ObjectEnvironment {
	e := &ObjectEnvironment{
		outer: outer, BindingObject: bindingObject, IsWithEnv: isWithEnv,
		heap: h, get: get, set: set, has: has, del: del,
	}
	// longKeys' interned StringHandles are reachable only from this Go map
	// until a binding is actually stored as a property (at which point
	// PropertyTable.MarkValues marks the key itself) — a binding probed via
	// HasBinding/GetBindingValue but never set would otherwise have its
	// interned handle swept out from under it. Register this environment as
	// its own root provider so every interned key survives for as long as
	// the environment itself does.
	h.AddRootProvider(func(q *heap.MarkQueue) {
		for _, k := range e.longKeys {
			if k.Tag() == value.PropertyKeyString {
				q.PushString(k.StringHandle())
			}
		}
	})
	return e
}

func (e *ObjectEnvironment) Outer() Environment { return e.outer }

// nameKey builds the property key a binding name resolves to on
// BindingObject: a SmallString key when name fits inline, otherwise a real
// heap-allocated string (global/function names like "document" or
// "setTimeout" routinely exceed SmallString's 7-byte inline cap, so falling
// back to an unrelated StringHandle(0) is not an option — that would alias
// whatever string happens to occupy slot 0).
func (e *ObjectEnvironment) nameKey(name string) value.PropertyKey {
	if ss, ok := value.NewSmallString(name); ok {
		return value.SmallStringKey(ss)
	}
	if k, ok := e.longKeys[name]; ok {
		return k
	}
	h := e.heap.AllocString(&heap.StringData{Bytes: []byte(name)})
	k := value.StringKey(h)
	if e.longKeys == nil {
		e.longKeys = make(map[string]value.PropertyKey)
	}
	e.longKeys[name] = k
	return k
}

func (e *ObjectEnvironment) HasBinding(name string) bool {
	gc, end := e.heap.EnterGC()
	defer end()
	ok, _ := e.has(e.heap, gc, e.BindingObject, e.nameKey(name))
	return ok
}

func (e *ObjectEnvironment) GetBindingValue(name string, strict bool) (value.Value, error) {
	gc, end := e.heap.EnterGC()
	defer end()
	key := e.nameKey(name)
	ok, err := e.has(e.heap, gc, e.BindingObject, key)
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		if strict {
			return value.Value{}, value.NewReferenceError("%s is not defined", name)
		}
		return value.Undefined, nil
	}
	return e.get(e.heap, gc, e.BindingObject, key, e.BindingObject)
}

func (e *ObjectEnvironment) SetMutableBinding(name string, v value.Value, strict bool) error {
	gc, end := e.heap.EnterGC()
	defer end()
	key := e.nameKey(name)
	ok, err := e.set(e.heap, gc, e.BindingObject, key, v, e.BindingObject)
	if err != nil {
		return err
	}
	if !ok && strict {
		return value.NewTypeError("Could not set property '%s'", name)
	}
	return nil
}

func (e *ObjectEnvironment) InitializeBinding(name string, v value.Value) error {
	return e.SetMutableBinding(name, v, true)
}

func (e *ObjectEnvironment) DeleteBinding(name string) (bool, error) {
	return e.del(e.heap, e.BindingObject, e.nameKey(name)), nil
}

func (e *ObjectEnvironment) WithBaseObject() (value.Value, bool) {
	if e.IsWithEnv {
		return e.BindingObject, true
	}
	return value.Value{}, false
}
