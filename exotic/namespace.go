package exotic

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// resolveStringKey resolves any string-tagged PropertyKey (small or
// heap-allocated) to its Go string, for export-name lookups.
func resolveStringKey(h *heap.Heap, key value.PropertyKey) (string, bool) {
	if key.IsSmallString() {
		return key.SmallStringValue().String(), true
	}
	if key.Tag() == value.PropertyKeyString {
		return h.GetString(key.StringHandle()).AsString(), true
	}
	return "", false
}

func containsExport(data *heap.ModuleNamespaceHeapData, name string) bool {
	for _, n := range data.Exports {
		if n == name {
			return true
		}
	}
	return false
}

// namespaceGet implements the Module Namespace [[Get]] override (spec
// §4.3.1): symbol/private keys delegate to the ordinary backing store;
// string keys resolve through the module's export graph.
func namespaceGet(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, receiver value.Value, inv Invoker) (value.Value, error) {
	if key.IsSymbol() || key.IsPrivateName() {
		return ordinaryGet(h, scope, obj, key, receiver, inv)
	}
	name, ok := resolveStringKey(h, key)
	if !ok {
		return value.Undefined, nil
	}
	data := h.GetModuleNamespace(value.ModuleHandle(obj.ObjectHandle()))
	rb, status := data.Module.ResolveExport(name)
	switch status {
	case heap.ResolveNotFound:
		return value.Undefined, nil
	case heap.ResolveAmbiguous:
		return value.Value{}, value.NewReferenceError("ambiguous export %q", name)
	}
	if rb.BindingName == heap.NamespaceBindingName {
		return rb.Module.Namespace(h, scope), nil
	}
	if !rb.Module.EnvironmentInstantiated() {
		return value.Value{}, value.NewReferenceError("Cannot access '%s' before module initialization", name)
	}
	return rb.Module.GetBindingValue(rb.BindingName)
}

func namespaceHasProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, inv Invoker) (bool, error) {
	if key.IsSymbol() || key.IsPrivateName() {
		return ordinaryHasProperty(h, scope, obj, key, inv)
	}
	name, ok := resolveStringKey(h, key)
	if !ok {
		return false, nil
	}
	data := h.GetModuleNamespace(value.ModuleHandle(obj.ObjectHandle()))
	return containsExport(data, name), nil
}

func namespaceGetOwnProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, inv Invoker) (heap.PropertyDescriptor, bool, error) {
	if key.IsSymbol() || key.IsPrivateName() {
		return ordinaryGetOwnProperty(h, obj, key)
	}
	name, ok := resolveStringKey(h, key)
	data := h.GetModuleNamespace(value.ModuleHandle(obj.ObjectHandle()))
	if !ok || !containsExport(data, name) {
		return heap.PropertyDescriptor{}, false, nil
	}
	v, err := namespaceGet(h, scope, obj, key, obj, inv)
	if err != nil {
		return heap.PropertyDescriptor{}, false, err
	}
	return heap.PropertyDescriptor{
		Value: v, HasValue: true, Writable: true, Enumerable: true, Configurable: false,
	}, true, nil
}

// namespaceSet always fails — a Module Namespace's bindings are immutable
// from the language's view (spec §4.3.1's `set` → always false).
func namespaceSet(h *heap.Heap, obj value.Value, key value.PropertyKey) bool {
	_ = h
	_ = obj
	_ = key
	return false
}

// namespaceDefineOwnProperty accepts only a descriptor exactly matching the
// export's current value and the fixed {writable:true, enumerable:true,
// configurable:false} shape (spec §4.3.1).
func namespaceDefineOwnProperty(h *heap.Heap, scope heap.GcScope, obj value.Value, key value.PropertyKey, desc heap.PropertyDescriptor, inv Invoker) bool {
	current, ok, err := namespaceGetOwnProperty(h, scope, obj, key, inv)
	if err != nil || !ok {
		return false
	}
	if desc.HasConfigurable && desc.Configurable {
		return false
	}
	if desc.HasEnumerable && !desc.Enumerable {
		return false
	}
	if desc.HasWritable && !desc.Writable {
		return false
	}
	if desc.IsAccessor() {
		return false
	}
	if desc.HasValue && !h.SameValue(desc.Value, current.Value) {
		return false
	}
	return true
}

func namespaceDelete(h *heap.Heap, obj value.Value, key value.PropertyKey) bool {
	if key.IsSymbol() || key.IsPrivateName() {
		return ordinaryDelete(h, obj, key)
	}
	name, ok := resolveStringKey(h, key)
	data := h.GetModuleNamespace(value.ModuleHandle(obj.ObjectHandle()))
	if ok && containsExport(data, name) {
		return false
	}
	return true
}

// namespaceOwnPropertyKeys returns exports (string keys, declared/sorted
// order already fixed at namespace-creation time) followed by the backing
// object's symbol keys in insertion order (spec §4.3.1).
func namespaceOwnPropertyKeys(h *heap.Heap, obj value.Value) []value.PropertyKey {
	data := h.GetModuleNamespace(value.ModuleHandle(obj.ObjectHandle()))
	keys := make([]value.PropertyKey, 0, len(data.Exports))
	for _, name := range data.Exports {
		ss, ok := value.NewSmallString(name)
		if ok {
			keys = append(keys, value.SmallStringKey(ss))
			continue
		}
		h2 := h.AllocString(&heap.StringData{Bytes: []byte(name)})
		keys = append(keys, value.StringKey(h2))
	}
	for _, k := range data.Ordinary.Properties.OwnKeys() {
		if k.IsSymbol() {
			keys = append(keys, k)
		}
	}
	return keys
}
