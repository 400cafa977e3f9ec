package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
	"github.com/Carmen-Shannon/prism-go/engine/gpu/gputest"
)

func TestNewBufferSetBindsVertexArray(t *testing.T) {
	ctx := gputest.NewContext()
	set, err := NewBufferSet(ctx)
	require.NoError(t, err)

	assert.Zero(t, set.Count())
	assert.Equal(t, set.Handle(), ctx.BoundVertexArray())
	assert.Equal(t, 1, ctx.LiveVertexArrays())
}

func TestNewBufferSetAllocationFailure(t *testing.T) {
	ctx := gputest.NewContext()
	ctx.FailVertexArrays = true

	_, err := NewBufferSet(ctx)
	var allocErr *AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, "vertex array", allocErr.Resource)
}

func TestAddBufferPreservesOrder(t *testing.T) {
	ctx := gputest.NewContext()
	set, err := NewBufferSet(ctx)
	require.NoError(t, err)

	vertices, err := AddBuffer(ctx, set, []testVertex{{}, {}, {}}, gpu.BufferKindVertex, gpu.UpdateDynamic)
	require.NoError(t, err)
	indices, err := AddBuffer(ctx, set, []uint16{0, 1, 2}, gpu.BufferKindIndex, gpu.UpdateStatic)
	require.NoError(t, err)

	require.Equal(t, 2, set.Count())
	assert.Equal(t, vertices.Handle(), set.Buffer(0).Handle())
	assert.Equal(t, indices.Handle(), set.Buffer(1).Handle())
	assert.Equal(t, gpu.BufferKindVertex, set.Buffer(0).Kind())
	assert.Equal(t, gpu.BufferKindIndex, set.Buffer(1).Kind())
	assert.Nil(t, set.Buffer(2))
	assert.Nil(t, set.Buffer(-1))
}

func TestAddBufferRebindsOwningVertexArray(t *testing.T) {
	ctx := gputest.NewContext()
	first, err := NewBufferSet(ctx)
	require.NoError(t, err)
	second, err := NewBufferSet(ctx)
	require.NoError(t, err)
	require.Equal(t, second.Handle(), ctx.BoundVertexArray())

	// Growing the first set must scope the new buffer to its own vertex array,
	// not whichever one happens to be bound.
	_, err = AddBuffer(ctx, first, []uint16{0}, gpu.BufferKindIndex, gpu.UpdateStatic)
	require.NoError(t, err)
	assert.Equal(t, first.Handle(), ctx.BoundVertexArray())
}

func TestAddBufferNilSet(t *testing.T) {
	ctx := gputest.NewContext()
	_, err := AddBuffer[uint16](ctx, nil, nil, gpu.BufferKindIndex, gpu.UpdateStatic)
	assert.Error(t, err)
}

func TestAddBufferAllocationFailureLeavesSetUnchanged(t *testing.T) {
	ctx := gputest.NewContext()
	set, err := NewBufferSet(ctx)
	require.NoError(t, err)

	ctx.FailBuffers = true
	_, err = AddBuffer(ctx, set, []testVertex{{}}, gpu.BufferKindVertex, gpu.UpdateStatic)
	var allocErr *AllocationError
	require.ErrorAs(t, err, &allocErr)
	assert.Zero(t, set.Count())
}

func TestActivateBindsHandle(t *testing.T) {
	ctx := gputest.NewContext()
	set, err := NewBufferSet(ctx)
	require.NoError(t, err)

	ctx.BindVertexArray(0)
	set.Activate(ctx)
	assert.Equal(t, set.Handle(), ctx.BoundVertexArray())
}

func TestReleaseDestroysOwnedResources(t *testing.T) {
	ctx := gputest.NewContext()
	set, err := NewBufferSet(ctx)
	require.NoError(t, err)
	_, err = AddBuffer(ctx, set, []testVertex{{}}, gpu.BufferKindVertex, gpu.UpdateDynamic)
	require.NoError(t, err)
	_, err = AddBuffer(ctx, set, []uint16{0, 1, 2}, gpu.BufferKindIndex, gpu.UpdateStatic)
	require.NoError(t, err)
	require.Equal(t, 2, ctx.LiveBuffers())

	set.Release(ctx)
	assert.Zero(t, ctx.LiveBuffers())
	assert.Zero(t, ctx.LiveVertexArrays())
	assert.Zero(t, set.Count())
}
