package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovmjs/corevm/value"
)

func Test_MarkQueue_PushValue_DedupsCycles(t *testing.T) {
	q := newMarkQueue()

	// simulate a self-referential prototype chain: pushing the same object
	// handle twice must enqueue it for draining only once.
	v := value.ObjectValue(value.KindOrdinary, 5)
	q.PushValue(v)
	q.PushValue(v)

	drained := q.drainOrdinary()
	require.Len(t, drained, 1)
	require.Equal(t, uint32(5), drained[0])

	// queue is empty now; a second drain call returns nil, terminating the
	// worklist loop in heap.mark.
	require.Nil(t, q.drainOrdinary())
}

func Test_MarkQueue_PushValue_Immediates_NoOp(t *testing.T) {
	q := newMarkQueue()
	q.PushValue(value.Undefined)
	q.PushValue(value.Null)
	q.PushValue(value.SmallInteger(1))
	q.PushValue(value.Boolean(true))

	require.Nil(t, q.drainOrdinary())
	require.Empty(t, q.seen)
}

func Test_MarkQueue_DistinguishesKindsAndTags(t *testing.T) {
	q := newMarkQueue()
	q.PushValue(value.ObjectValue(value.KindOrdinary, 0))
	q.PushValue(value.ObjectValue(value.KindArray, 0))
	q.PushValue(value.StringValue(value.StringHandle(0)))

	require.True(t, isMarkedObject(q, value.KindOrdinary)(0))
	require.True(t, isMarkedObject(q, value.KindArray)(0))
	require.False(t, isMarkedObject(q, value.KindArrayBuffer)(0))
	require.True(t, isMarkedTagged(q, value.TagString)(0))
	require.False(t, isMarkedTagged(q, value.TagNumber)(0))
}
