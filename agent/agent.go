package agent

import (
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/module"
	"github.com/ovmjs/corevm/reference"
	"github.com/ovmjs/corevm/value"
)

// markRealmRoots is the heap.RootProvider registered by NewAgent: it marks
// the realm table and intrinsics (spec §4.2's root set (a)), the one root
// category that isn't a scoped handle under RootSet's discipline.
func markRealmRoots(realm *Realm) heap.RootProvider {
	return func(q *heap.MarkQueue) {
		q.PushValue(realm.GlobalObj)
		q.PushValue(realm.Intrinsics.BooleanPrototype)
		q.PushValue(realm.Intrinsics.NumberPrototype)
		q.PushValue(realm.Intrinsics.StringPrototype)
		q.PushValue(realm.Intrinsics.SymbolPrototype)
		q.PushValue(realm.Intrinsics.BigIntPrototype)
	}
}

// Agent is the single-threaded execution owner spec §6's GLOSSARY names:
// the heap, the realm(s), host hooks, and the module registry resolution
// hooks into. Mirrors the teacher's factory.go constructor-returns-an-
// interface-backed-handle pattern (Open/NewEditor/NewHive), generalized
// from "one function per hive-opening mode" to one constructor,
// NewAgent, since this core has only one kind of runtime to build.
type Agent struct {
	Heap  *heap.Heap
	Realm *Realm
	Hooks HostHooks

	modules map[string]*module.Record
}

// NewAgent implements spec §6's `Agent::new(host_hooks)`: allocates the
// heap, the default realm, initializes logging from opts.Log when it is
// enabled, and stores opts.Hooks for later use by module resolution.
func NewAgent(opts Options) *Agent {
	h := heap.NewHeap()
	opts.applyTo(h)
	if opts.Log.Enabled {
		if err := InitLogging(opts.Log); err != nil {
			L.Warn("logging init failed", "error", err)
		}
	}

	a := &Agent{
		Heap:    h,
		Hooks:   opts.Hooks,
		modules: make(map[string]*module.Record),
	}
	a.Realm = NewRealm(h)
	h.AddRootProvider(markRealmRoots(a.Realm))
	L.Info("agent created", "allocThreshold", opts.AllocThreshold)
	return a
}

// RegisterModule adds m to this agent's module registry under name, so
// ResolveModuleByName and the HostHooks.ResolveModule default path can find
// it. Mirrors module.Record's own memoized-ResolveExport caching model:
// registration is a one-time, side-effect-free step.
func (a *Agent) RegisterModule(name string, m *module.Record) {
	a.modules[name] = m
}

// ResolveModuleByName looks up a previously registered module record by
// name, falling back to a.Hooks.ResolveModule's embedding-supplied
// resolution when not found locally (mirrors how the teacher's
// pkg/hive.Open falls through to NewEditor/NewHive depending on whether a
// backing file already exists).
func (a *Agent) ResolveModuleByName(referrer, specifier string) (*module.Record, error) {
	if m, ok := a.modules[specifier]; ok {
		return m, nil
	}
	if a.Hooks.ResolveModule == nil {
		return nil, value.NewTypeError("cannot resolve module %q from %q: no module resolution hook installed", specifier, referrer)
	}
	h, err := a.Hooks.ResolveModule(referrer, specifier)
	if err != nil {
		return nil, err
	}
	m, ok := a.modules[h.Name]
	if !ok {
		return nil, value.NewTypeError("host resolved module %q but it was never registered", h.Name)
	}
	return m, nil
}

// RunGC implements spec §6's `run_gc(agent)`: an explicit, synchronous
// collection cycle, exposed for tests and for embeddings with their own
// memory-pressure hooks. Returns the same heap.GCStats RunGC's internal
// caller would see, so embedders and tests can assert on live-object
// counts directly.
func (a *Agent) RunGC() heap.GCStats {
	stats := a.Heap.RunGC()
	L.Debug("gc cycle complete", "ordinaryAfter", stats.OrdinaryAfter, "arraysAfter", stats.ArraysAfter)
	return stats
}

// MaybeGC triggers a collection only if the heap's allocation threshold has
// been exceeded since the last cycle — the non-forced counterpart to
// RunGC, matching heap.Heap.MaybeGC's own "maybe" naming.
func (a *Agent) MaybeGC() {
	a.Heap.MaybeGC()
}

// Resolver builds a reference.Resolver wired to this agent's object-model
// dispatch (get/set/has/private-field hooks) and primitive-prototype
// table, for use by reference.GetValue/PutValue. get/set/has are injected
// by the caller (normally exotic.Get/exotic.Set/exotic.HasProperty bound
// with an Invoker) to avoid agent depending on package exotic, mirroring
// the same import-cycle avoidance reference/environment.go's ObjectEnvironment
// already uses.
func (a *Agent) Resolver(get reference.GetFn, set reference.SetFn) reference.Resolver {
	return reference.Resolver{
		Get:     get,
		Set:     set,
		Private: reference.DefaultPrivateAccessor{},
		Prims:   a.Realm.Intrinsics,
	}
}

// NewGlobalEnvironment builds a reference.GlobalEnvironment bound to this
// agent's realm global object, using get/set/has/del callbacks supplied the
// same way Resolver's are — kept as a thin convenience so callers building
// an interpreter's initial execution context don't have to hand-assemble
// an ObjectEnvironment themselves.
func (a *Agent) NewGlobalEnvironment(get reference.GetFn, set reference.SetFn, has reference.HasFn, del reference.DeleteFn) *reference.GlobalEnvironment {
	objEnv := reference.NewObjectEnvironment(a.Heap, nil, a.Realm.GlobalObj, false, get, set, has, del)
	return reference.NewGlobalEnvironment(objEnv)
}
