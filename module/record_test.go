package module

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

func Test_ResolveExport_Local(t *testing.T) {
	m := NewRecord("m")
	m.AddLocalExport("a", "a")
	m.SetEnvironmentInstantiated()
	m.InitializeBinding("a", value.SmallInteger(1))

	rb, status := m.ResolveExport("a")
	require.Equal(t, heap.ResolveOK, status)
	require.Equal(t, "a", rb.BindingName)

	v, err := rb.Module.GetBindingValue(rb.BindingName)
	require.NoError(t, err)
	require.True(t, value.SameValue(v, value.SmallInteger(1)))
}

func Test_ResolveExport_NotFound(t *testing.T) {
	m := NewRecord("m")
	_, status := m.ResolveExport("missing")
	require.Equal(t, heap.ResolveNotFound, status)
}

func Test_ResolveExport_Indirect(t *testing.T) {
	other := NewRecord("other")
	other.AddLocalExport("x", "x")
	other.InitializeBinding("x", value.SmallInteger(7))

	m := NewRecord("m")
	m.AddIndirectExport("y", other, "x")

	rb, status := m.ResolveExport("y")
	require.Equal(t, heap.ResolveOK, status)
	require.Equal(t, other, rb.Module)
	require.Equal(t, "x", rb.BindingName)
}

func Test_ResolveExport_StarAmbiguous(t *testing.T) {
	a := NewRecord("a")
	a.AddLocalExport("dup", "dup")
	b := NewRecord("b")
	b.AddLocalExport("dup", "dup")

	m := NewRecord("m")
	m.AddStarExport(a)
	m.AddStarExport(b)

	_, status := m.ResolveExport("dup")
	require.Equal(t, heap.ResolveAmbiguous, status)
}

func Test_ResolveExport_StarSameTargetNotAmbiguous(t *testing.T) {
	shared := NewRecord("shared")
	shared.AddLocalExport("x", "x")

	a := NewRecord("a")
	a.AddStarExport(shared)
	b := NewRecord("b")
	b.AddStarExport(shared)

	m := NewRecord("m")
	m.AddStarExport(a)
	m.AddStarExport(b)

	rb, status := m.ResolveExport("x")
	require.Equal(t, heap.ResolveOK, status)
	require.Equal(t, shared, rb.Module)
}

func Test_ResolveExport_StarCycleTerminates(t *testing.T) {
	a := NewRecord("a")
	b := NewRecord("b")
	a.AddStarExport(b)
	b.AddStarExport(a) // circular `export *` graph

	_, status := a.ResolveExport("anything")
	require.Equal(t, heap.ResolveNotFound, status)
}

func Test_ExportedNames_DedupsStarAndExcludesDefault(t *testing.T) {
	a := NewRecord("a")
	a.AddLocalExport("default", "anonDefault")
	a.AddLocalExport("shared", "shared")

	m := NewRecord("m")
	m.AddLocalExport("own", "own")
	m.AddStarExport(a)

	names := m.ExportedNames()
	require.ElementsMatch(t, []string{"own", "shared"}, names)
}

func Test_GetBindingValue_TDZ(t *testing.T) {
	m := NewRecord("m")
	m.AddLocalExport("a", "a")

	_, err := m.GetBindingValue("a")
	require.Error(t, err)
	var verr *value.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, value.KindReferenceError, verr.Kind)
}

func Test_InitializeBinding_DoubleInitPanics(t *testing.T) {
	m := NewRecord("m")
	m.AddLocalExport("a", "a")
	m.InitializeBinding("a", value.SmallInteger(1))

	require.Panics(t, func() { m.InitializeBinding("a", value.SmallInteger(2)) })
}

func Test_GetModuleNamespace_MemoizesAndSortsExports(t *testing.T) {
	h := heap.NewHeap()
	scope, end := h.EnterGC()
	defer end()

	m := NewRecord("m")
	m.AddLocalExport("b", "b")
	m.AddLocalExport("a", "a")
	m.InitializeBinding("a", value.SmallInteger(1))
	m.InitializeBinding("b", value.SmallInteger(2))

	first := GetModuleNamespace(h, scope, m)
	second := GetModuleNamespace(h, scope, m)
	require.True(t, value.SameValue(first, second), "namespace object must be memoized")

	data := h.GetModuleNamespace(value.ModuleHandle(first.ObjectHandle()))
	require.Equal(t, []string{"a", "b"}, data.Exports)
}
