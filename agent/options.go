package agent

import "github.com/ovmjs/corevm/heap"

// ResizeOutcome is the return type of HostHooks.ResizeArrayBuffer: Unhandled
// names the default in-place resize (exotic.ResizeArrayBuffer); Handled names
// a resize the host has performed (or rejected) itself. No code in this core
// calls the hook or reads its outcome.
type ResizeOutcome int

const (
	Unhandled ResizeOutcome = iota
	Handled
)

// HostHooks is the extension-point surface spec §6 names for Agent::new:
// module resolution, array buffer resize interposition, and similar
// embedding callbacks. Every hook has a documented no-op default so an
// embedder can supply a partially-populated HostHooks — mirroring the
// teacher's pkg/hive MergeOptions/OperationOptions callback fields
// (OnProgress/OnError), which are likewise optional and nil-checked at the
// call site rather than required.
type HostHooks struct {
	// ResolveModule resolves an import specifier relative to a referrer
	// module's identity (its Record's Name) to another Record. Returns
	// ErrKindSyntaxError-wrapped error when no such module exists. With a nil
	// ResolveModule, only modules added through Agent.RegisterModule resolve;
	// any other import attempt fails.
	ResolveModule func(referrer string, specifier string) (*ModuleHandle, error)

	// ResizeArrayBuffer is kept on Agent.Hooks for the embedding, but
	// nothing in this core calls it: exotic.ResizeArrayBuffer always runs
	// its own grow/shrink-in-place logic and does not consult this hook,
	// whether it is nil or not.
	ResizeArrayBuffer func(buf uint32, newLen uint64) ResizeOutcome
}

// ModuleHandle is an opaque identity for a resolved module the HostHooks
// module-resolution callback returns; it wraps the module package's own
// Record without agent importing module directly (module does not need to
// know about agent, keeping the dependency one-directional).
type ModuleHandle struct {
	Name string
}

// Options configures NewAgent. The zero value is a usable, host-hook-free
// agent suitable for tests — mirrors the teacher's OpenOptions/MergeOptions
// "every field has a sane zero-value default" convention.
type Options struct {
	// Hooks supplies the embedding's HostHooks. The zero value (all nil
	// callbacks) is valid: only modules registered with Agent.RegisterModule
	// resolve, buffer resize always uses the default in-place path.
	Hooks HostHooks

	// AllocThreshold overrides heap.Heap's default GC trigger threshold
	// (heap.Heap's own default applies when zero).
	AllocThreshold int

	// Log configures agent-level logging: NewAgent passes it to InitLogging
	// when Log.Enabled is set. The zero value leaves L as it is, which
	// discards all output by default, matching heap's own
	// silence-by-default convention.
	Log LogOptions
}

// applyTo wires o onto a freshly constructed heap.Heap.
func (o Options) applyTo(h *heap.Heap) {
	if o.AllocThreshold != 0 {
		h.SetAllocThreshold(o.AllocThreshold)
	}
}
