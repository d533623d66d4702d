package main

import (
	"github.com/ovmjs/corevm/agent"
	"github.com/ovmjs/corevm/heap"
	"github.com/ovmjs/corevm/value"
)

// heapRow is one kind's entry in the inspector's list pane.
type heapRow struct {
	name  string
	count func(h *heap.Heap) int
	alloc func(h *heap.Heap)
}

var heapRows = []heapRow{
	{"Ordinary", func(h *heap.Heap) int { return len(h.Ordinary) },
		func(h *heap.Heap) { h.AllocOrdinary(heap.NewOrdinaryObjectData(value.Null, true)) }},
	{"Array", func(h *heap.Heap) int { return len(h.Arrays) },
		func(h *heap.Heap) {
			h.AllocArray(&heap.ArrayObjectData{Ordinary: heap.NewOrdinaryObjectData(value.Null, true)})
		}},
	{"ArrayBuffer", func(h *heap.Heap) int { return len(h.ArrayBuffers) },
		func(h *heap.Heap) {
			h.AllocArrayBuffer(&heap.ArrayBufferHeapData{
				Block:         heap.NewDataBlock(8),
				MaxByteLength: heap.NoMaxByteLength,
				Ordinary:      heap.NewOrdinaryObjectData(value.Null, true),
			})
		}},
	{"ArrayIterator", func(h *heap.Heap) int { return len(h.ArrayIterators) },
		func(h *heap.Heap) {
			h.AllocArrayIterator(&heap.ArrayIteratorHeapData{Target: value.Undefined, HasTarget: true})
		}},
	{"ModuleNamespace", func(h *heap.Heap) int { return len(h.ModuleNamespaces) },
		func(h *heap.Heap) {
			h.AllocModuleNamespace(&heap.ModuleNamespaceHeapData{Ordinary: heap.NewOrdinaryObjectData(value.Null, true)})
		}},
	{"String", func(h *heap.Heap) int { return len(h.Strings) },
		func(h *heap.Heap) { h.AllocString(&heap.StringData{}) }},
	{"Number", func(h *heap.Heap) int { return len(h.Numbers) },
		func(h *heap.Heap) { h.AllocNumber(&heap.NumberData{}) }},
	{"BigInt", func(h *heap.Heap) int { return len(h.BigInts) },
		func(h *heap.Heap) { h.AllocBigInt(&heap.BigIntData{}) }},
	{"Symbol", func(h *heap.Heap) int { return len(h.Symbols) },
		func(h *heap.Heap) { h.AllocSymbol(&heap.SymbolData{}) }},
}

// Model is the heap inspector's Elm-architecture model: a cursor over
// heapRows, the agent being inspected, the keymap, and transient UI state
// (a status line and the most recent GC stats), trimmed from the teacher's
// much larger hiveexplorer Model (split-pane tree/value view, search,
// bookmarks, diff mode — none of which a heap-of-typed-vectors browser
// needs).
type Model struct {
	agent  *agent.Agent
	keys   KeyMap
	cursor int

	width  int
	height int

	lastGC   heap.GCStats
	hasGC    bool
	status   string
	showHelp bool
}

// NewModel builds a fresh inspector model over a freshly constructed
// in-process agent — this core parses no external program, so there is no
// file path to open, unlike the teacher's NewModel(hivePath).
func NewModel() Model {
	return Model{
		agent: agent.NewAgent(agent.Options{}),
		keys:  DefaultKeyMap(),
	}
}
