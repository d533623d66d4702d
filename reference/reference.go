package reference

import "github.com/ovmjs/corevm/value"

// BaseKind discriminates a Reference Record's base per ECMA-262 6.2.5: an
// environment binding, a property on a value, or an unresolvable identifier.
// A private-name reference (supplemented from original_source) is a
// BaseValue reference with Reference.IsPrivate set.
type BaseKind uint8

const (
	BaseUnresolvable BaseKind = iota
	BaseEnvironment
	BaseValue
)

// Reference is ECMA-262's Reference Record (6.2.5): the result of
// evaluating an identifier or member expression, not yet read or written.
// Base is one of value.Value (BaseValue), an Environment (BaseEnvironment),
// or unused (BaseUnresolvable). ReferencedName is a PropertyKey for property
// references, or the plain identifier name for environment/unresolvable
// ones — Key is used when HasKey is set, otherwise a key is built from Name.
type Reference struct {
	BaseKind      BaseKind
	BaseValue     value.Value
	BaseEnv       Environment
	Name          string
	Key           value.PropertyKey
	HasKey        bool
	Strict        bool
	ThisValue     value.Value
	HasThis       bool
	PrivateName   string
	IsPrivate     bool
}

// NewPropertyReference builds a Reference whose base is a Value and whose
// referenced name is a PropertyKey — the result of evaluating `expr[key]` or
// `expr.prop`.
func NewPropertyReference(base value.Value, key value.PropertyKey, strict bool) Reference {
	return Reference{BaseKind: BaseValue, BaseValue: base, Key: key, HasKey: true, Strict: strict}
}

// NewEnvironmentReference builds a Reference whose base is an Environment —
// the result of evaluating a bare identifier.
func NewEnvironmentReference(env Environment, name string, strict bool) Reference {
	return Reference{BaseKind: BaseEnvironment, BaseEnv: env, Name: name, Strict: strict}
}

// NewUnresolvableReference builds a Reference for an identifier no
// environment in the chain declared (ResolveBinding exhausted Outer without
// a match).
func NewUnresolvableReference(name string, strict bool) Reference {
	return Reference{BaseKind: BaseUnresolvable, Name: name, Strict: strict}
}

// MakePrivateReference builds a property Reference whose Key carries a
// PrivateName, per original_source's reference.rs (spec.md's condensed §4.4
// names PrivateGet/PrivateSet but not the Reference-construction helper that
// produces the Key feeding them). base is the already-evaluated object
// expression; privateName is the already-resolved PrivateName identity
// (interned once per class body, looked up by the caller's PrivateEnvironment
// — out of this core's scope per spec §1, so represented here as a
// value.PrivateNameHandle wrapped by value.PrivateNameKey).
func MakePrivateReference(base value.Value, privateName value.PrivateNameHandle) Reference {
	return Reference{
		BaseKind: BaseValue, BaseValue: base,
		Key: value.PrivateNameKey(privateName), HasKey: true,
		IsPrivate: true,
	}
}

// IsPropertyReference implements the predicate named by spec §4.4,
// supplemented (spec.md's condensed text states the decision tree but not
// this helper by name) from original_source's reference.rs: true iff the
// reference's base is a Value rather than an Environment Record or
// unresolvable.
func IsPropertyReference(r Reference) bool {
	return r.BaseKind == BaseValue
}

// IsUnresolvableReference implements the predicate named by spec §4.4: true
// iff GetValue/PutValue on r would throw a ReferenceError for an undeclared
// binding.
func IsUnresolvableReference(r Reference) bool {
	return r.BaseKind == BaseUnresolvable
}

// IsSuperReference reports whether r was produced by a `super.prop`
// expression — recorded via HasThis, with ThisValue held apart from BaseValue (the
// super-reference case per ECMA-262 6.2.5.3, where accesses resolve property
// lookup against the home object's prototype but `this`-bind against the
// enclosing method's receiver).
func IsSuperReference(r Reference) bool {
	return r.HasThis
}

// IsPrivateReference implements the predicate original_source names
// alongside MakePrivateReference: true iff r's Key carries a PrivateName.
func IsPrivateReference(r Reference) bool {
	return r.IsPrivate
}

// GetThisValue implements ECMA-262 6.2.5.4: the this-value a reference
// would bind for a following call, defaulting to BaseValue for an ordinary
// property reference and to the recorded ThisValue for a super-reference.
func GetThisValue(r Reference) value.Value {
	if r.HasThis {
		return r.ThisValue
	}
	return r.BaseValue
}

// referenceKey returns r's property key for a BaseValue reference, building
// one from Name when the reference was constructed with a plain identifier
// rather than a pre-resolved PropertyKey.
func referenceKey(r Reference) value.PropertyKey {
	if r.HasKey {
		return r.Key
	}
	if ss, ok := value.NewSmallString(r.Name); ok {
		return value.SmallStringKey(ss)
	}
	return value.StringKey(0)
}
