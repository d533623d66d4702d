package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/module"
	"github.com/ovmjs/corevm/value"
)

func Test_NewAgent_DefaultOptions(t *testing.T) {
	a := NewAgent(Options{})
	require.NotNil(t, a.Heap)
	require.NotNil(t, a.Realm)
	require.True(t, a.Realm.GlobalObj.IsObject())
}

func Test_NewAgent_AllocThreshold(t *testing.T) {
	a := NewAgent(Options{AllocThreshold: 8})
	for i := 0; i < 20; i++ {
		a.Heap.AllocOrdinary(heap.NewOrdinaryObjectData(value.Null, true))
	}
	require.GreaterOrEqual(t, a.Heap.AllocCount(), 0)
}

func Test_Intrinsics_PrototypeFor(t *testing.T) {
	a := NewAgent(Options{})
	in := a.Realm.Intrinsics

	p, ok := in.PrototypeFor(value.Boolean(true))
	require.True(t, ok)
	require.True(t, value.SameValue(p, in.BooleanPrototype))

	p, ok = in.PrototypeFor(value.SmallInteger(1))
	require.True(t, ok)
	require.True(t, value.SameValue(p, in.NumberPrototype))

	_, ok = in.PrototypeFor(value.Undefined)
	require.False(t, ok)
}

func Test_ResolveModuleByName_Registered(t *testing.T) {
	a := NewAgent(Options{})
	m := module.NewRecord("m")
	a.RegisterModule("m", m)

	got, err := a.ResolveModuleByName("entry", "m")
	require.NoError(t, err)
	require.Same(t, m, got)
}

func Test_ResolveModuleByName_NoHookFails(t *testing.T) {
	a := NewAgent(Options{})
	_, err := a.ResolveModuleByName("entry", "missing")
	require.Error(t, err)
}

func Test_ResolveModuleByName_HostHook(t *testing.T) {
	a := NewAgent(Options{
		Hooks: HostHooks{
			ResolveModule: func(referrer, specifier string) (*ModuleHandle, error) {
				return &ModuleHandle{Name: "resolved"}, nil
			},
		},
	})
	m := module.NewRecord("resolved")
	a.RegisterModule("resolved", m)

	got, err := a.ResolveModuleByName("entry", "whatever")
	require.NoError(t, err)
	require.Same(t, m, got)
}

func Test_RunGC_ReturnsStats(t *testing.T) {
	a := NewAgent(Options{})
	// NewAgent itself allocates 6 ordinary objects (GlobalObj + 5 intrinsic
	// wrapper prototypes) which markRealmRoots keeps alive across GC; only
	// this extra, unrooted allocation should be collected.
	a.Heap.AllocOrdinary(heap.NewOrdinaryObjectData(value.Null, true))
	stats := a.RunGC()
	require.Equal(t, 6, stats.OrdinaryAfter)
}
