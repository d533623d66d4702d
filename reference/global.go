package reference

import "github.com/ovmjs/corevm/value"

// GlobalEnvironment composes a DeclarativeEnvironment (for global
// let/const/class bindings) with an ObjectEnvironment (for `var`/function
// declarations and the pre-existing global object's own properties), per
// ECMA-262 9.1.1.4 — the two components share observable binding names but
// are consulted in a fixed order (declarative first) rather than merged
// into a single table.
type GlobalEnvironment struct {
	declarative *DeclarativeEnvironment
	object      *ObjectEnvironment
	varNames    map[string]bool
}

// NewGlobalEnvironment wires a GlobalEnvironment over globalObject, whose
// property-access callbacks come from objEnv (typically built via
// NewObjectEnvironment over the Realm's already-allocated global object).
func NewGlobalEnvironment(objEnv *ObjectEnvironment) *GlobalEnvironment {
	return &GlobalEnvironment{
		declarative: NewDeclarativeEnvironment(nil),
		object:      objEnv,
		varNames:    make(map[string]bool),
	}
}

func (e *GlobalEnvironment) Outer() Environment { return nil }

func (e *GlobalEnvironment) HasBinding(name string) bool {
	return e.declarative.HasBinding(name) || e.object.HasBinding(name)
}

// CreateMutableBinding declares a global `let`/class binding (TDZ until
// InitializeBinding); `var` declarations instead go through
// CreateGlobalVarBinding.
func (e *GlobalEnvironment) CreateMutableBinding(name string) {
	e.declarative.CreateMutableBinding(name)
}

func (e *GlobalEnvironment) CreateImmutableBinding(name string) {
	e.declarative.CreateImmutableBinding(name)
}

// CreateGlobalVarBinding implements ECMA-262 9.1.1.4.13: a `var` or
// function declaration becomes an own property of the global object,
// tracked separately so HasVarDeclaration can answer without a property
// lookup. The property is written through the object environment's set
// callback, so its attributes are whatever that [[Set]] creates; this
// function does not make it non-configurable.
func (e *GlobalEnvironment) CreateGlobalVarBinding(name string, v value.Value) error {
	e.varNames[name] = true
	return e.object.InitializeBinding(name, v)
}

func (e *GlobalEnvironment) HasVarDeclaration(name string) bool {
	return e.varNames[name]
}

func (e *GlobalEnvironment) GetBindingValue(name string, strict bool) (value.Value, error) {
	if e.declarative.HasBinding(name) {
		return e.declarative.GetBindingValue(name, strict)
	}
	return e.object.GetBindingValue(name, strict)
}

func (e *GlobalEnvironment) SetMutableBinding(name string, v value.Value, strict bool) error {
	if e.declarative.HasBinding(name) {
		return e.declarative.SetMutableBinding(name, v, strict)
	}
	return e.object.SetMutableBinding(name, v, strict)
}

func (e *GlobalEnvironment) InitializeBinding(name string, v value.Value) error {
	if e.declarative.HasBinding(name) {
		return e.declarative.InitializeBinding(name, v)
	}
	return e.object.InitializeBinding(name, v)
}

func (e *GlobalEnvironment) DeleteBinding(name string) (bool, error) {
	if e.declarative.HasBinding(name) {
		return e.declarative.DeleteBinding(name)
	}
	ok, err := e.object.DeleteBinding(name)
	if err == nil && ok {
		delete(e.varNames, name)
	}
	return ok, err
}

func (e *GlobalEnvironment) WithBaseObject() (value.Value, bool) { return value.Value{}, false }
