package heap

import "github.com/ovmjs/corevm/value"

// protoSlot is the [[Prototype]] slot of OrdinaryObjectData: the prototype
// value plus isSet, which distinguishes a resolved prototype (including
// Null) from "not yet resolved" (see HasPrototype).
type protoSlot struct {
	value value.Value
	isSet bool
}

// OrdinaryObjectData is the per-kind heap record every exotic object
// delegates to for its "ObjectIndex" upgrade store (spec §3): user-assigned
// properties, the prototype link, and the extensible flag.
type OrdinaryObjectData struct {
	Properties  *PropertyTable
	Prototype   protoSlot
	Extensible  bool
}

// NewOrdinaryObjectData returns a fresh, extensible object with the given
// prototype. hasPrototype=false means "no prototype resolved yet" whatever
// prototype holds; pass value.Null with hasPrototype=true for a
// null-prototype object.
func NewOrdinaryObjectData(prototype value.Value, hasPrototype bool) *OrdinaryObjectData {
	return &OrdinaryObjectData{
		Properties: NewPropertyTable(),
		Prototype:  protoSlot{value: prototype, isSet: hasPrototype},
		Extensible: true,
	}
}

// SetPrototype overwrites the [[Prototype]] slot. proto.IsNull() clears it
// to "no prototype"; any other object Value sets it.
func (d *OrdinaryObjectData) SetPrototype(proto value.Value) {
	d.Prototype = protoSlot{value: proto, isSet: true}
}

// HasPrototype reports whether [[Prototype]] is set (even to Null — a
// resolved null prototype is still "set", distinct from "never assigned").
func (d *OrdinaryObjectData) HasPrototype() bool { return d.Prototype.isSet }

// PrototypeValue returns the current [[Prototype]] value; meaningless unless
// HasPrototype() is true.
func (d *OrdinaryObjectData) PrototypeValue() value.Value { return d.Prototype.value }

func (d *OrdinaryObjectData) MarkValues(q *MarkQueue) {
	d.Properties.MarkValues(q)
	if d.Prototype.isSet {
		q.PushValue(d.Prototype.value)
	}
}

func (d *OrdinaryObjectData) SweepValues(c *CompactionSet) {
	d.Properties.SweepValues(c)
	if d.Prototype.isSet {
		if nv, ok := c.RewriteValue(d.Prototype.value); ok {
			d.Prototype.value = nv
		}
	}
}

// ArrayObjectData backs ordinary Array exotic objects: an embedded ordinary
// record (for non-index properties) plus the cached length.
type ArrayObjectData struct {
	Ordinary *OrdinaryObjectData
	Length   uint32
}

func (d *ArrayObjectData) MarkValues(q *MarkQueue)     { d.Ordinary.MarkValues(q) }
func (d *ArrayObjectData) SweepValues(c *CompactionSet) { d.Ordinary.SweepValues(c) }

// IterationKind distinguishes the three Array Iterator flavors.
type IterationKind uint8

const (
	IterationKey IterationKind = iota
	IterationValue
	IterationKeyAndValue
)

// ArrayIteratorHeapData is the heap record for %ArrayIteratorPrototype%
// instances (spec §4.3.3). Target is cleared (HasTarget=false) once the
// iterator is exhausted, marking it permanently done; a live iterator
// re-reads Target's current length on every Next() call, which is what makes
// it track mutation of the underlying array. Ordinary, when non-nil, is the
// embedded ordinary record for user-assigned properties.
type ArrayIteratorHeapData struct {
	Target    value.Value
	HasTarget bool
	NextIndex int64
	Kind      IterationKind
	Ordinary  *OrdinaryObjectData
}

func (d *ArrayIteratorHeapData) MarkValues(q *MarkQueue) {
	if d.HasTarget {
		q.PushValue(d.Target)
	}
	if d.Ordinary != nil {
		d.Ordinary.MarkValues(q)
	}
}

func (d *ArrayIteratorHeapData) SweepValues(c *CompactionSet) {
	if d.Ordinary != nil {
		d.Ordinary.SweepValues(c)
	}
	if d.HasTarget {
		if nv, ok := c.RewriteValue(d.Target); ok {
			d.Target = nv
		} else {
			d.HasTarget = false
		}
	}
}

// ModuleRecord is the subset of module/Record's interface the namespace
// object's internal methods need (spec §4.3.1's get/has/define dispatch).
// Defined here, implemented by *module.Record, so heap need not import
// module (which imports heap for handles) — see DESIGN.md.
type ModuleRecord interface {
	// ResolveExport resolves a string export name to a binding location,
	// or reports ambiguous/not-found via the second return.
	ResolveExport(name string) (ResolvedBinding, ResolveStatus)
	// ExportedNames returns the module's local + re-exported names in
	// their declared order.
	ExportedNames() []string
	// EnvironmentInstantiated reports whether the module's environment
	// record has been created (GetBindingValue is only safe afterward).
	EnvironmentInstantiated() bool
	// GetBindingValue reads a binding from the module's environment.
	GetBindingValue(name string) (value.Value, error)
	// Namespace returns (creating and memoizing on first call) this
	// module's Module Namespace exotic object — the target of the
	// NamespaceBindingName resolution case.
	Namespace(h *Heap, scope GcScope) value.Value
}

// ResolveStatus is the three-way result of ResolveExport.
type ResolveStatus uint8

const (
	ResolveOK ResolveStatus = iota
	ResolveNotFound
	ResolveAmbiguous
)

// NamespaceBindingName is the sentinel ResolvedBinding.BindingName takes
// when the resolved export is itself a module namespace object (an
// `export * as ns` re-export), per spec §4.3.1's GetModuleNamespace case.
const NamespaceBindingName = "\x00namespace\x00"

// ResolvedBinding names a concrete binding location a module export
// resolves to.
type ResolvedBinding struct {
	Module      ModuleRecord
	BindingName string
}

// ModuleNamespaceHeapData is the heap record for a Module Namespace exotic
// object: the frozen, prototype-less view of a module's exports (spec
// §4.3.1). Ordinary holds only symbol-keyed user properties — string export
// names never enter the property table, they're served directly off Module.
type ModuleNamespaceHeapData struct {
	Module   ModuleRecord
	Exports  []string // declared order; the frozen own-keys prefix
	Ordinary *OrdinaryObjectData
}

func (d *ModuleNamespaceHeapData) MarkValues(q *MarkQueue) {
	d.Ordinary.MarkValues(q)
}

func (d *ModuleNamespaceHeapData) SweepValues(c *CompactionSet) {
	d.Ordinary.SweepValues(c)
}

// StringData is the heap record for strings longer than 7 UTF-8 bytes.
type StringData struct {
	Bytes []byte
}

func (d *StringData) MarkValues(*MarkQueue) {}

// AsString returns the decoded Go string value.
func (d *StringData) AsString() string { return string(d.Bytes) }

// NumberData is the heap record for numbers outside the immediate range.
type NumberData struct {
	Value float64
}

func (d *NumberData) MarkValues(*MarkQueue) {}

// BigIntData is the heap record for bigints outside the immediate range.
type BigIntData struct {
	Negative bool
	Digits   []uint32 // little-endian base-2^32 magnitude
}

func (d *BigIntData) MarkValues(*MarkQueue) {}

// SymbolData is the heap record for a Symbol: its optional description.
type SymbolData struct {
	Description    string
	HasDescription bool
}

func (d *SymbolData) MarkValues(*MarkQueue) {}
