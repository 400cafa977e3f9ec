package buffer

import (
	"fmt"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// bufferSet is the implementation of the BufferSet interface.
type bufferSet struct {
	// handle is the GPU vertex-array object bundling the buffer bindings.
	handle gpu.VertexArray

	// buffers holds the owned buffers in construction order. No buffer is
	// shared across two sets.
	buffers []Buffer
}

// BufferSet owns one GPU vertex-array handle and an ordered, heterogeneous
// collection of typed buffers (commonly one vertex buffer plus one index
// buffer). Activating the set is the unit of "make this geometry current".
// Build the collection with one AddBuffer call per buffer; buffers are
// addressed afterwards by the position they were added in.
type BufferSet interface {
	// Activate binds the vertex-array handle. Must be called before any draw
	// call that reads this set's buffer bindings.
	//
	// Parameters:
	//   - ctx: the GPU context to issue the call on
	Activate(ctx gpu.Context)

	// Buffer retrieves the buffer added at the given position.
	//
	// Parameters:
	//   - index: the zero-based position matching AddBuffer call order
	//
	// Returns:
	//   - Buffer: the buffer at that position, or nil if out of range
	Buffer(index int) Buffer

	// Count returns the number of buffers in the set.
	//
	// Returns:
	//   - int: the buffer count
	Count() int

	// Handle returns the underlying vertex-array handle.
	//
	// Returns:
	//   - gpu.VertexArray: the vertex-array handle
	Handle() gpu.VertexArray

	// Release destroys every owned buffer and then the vertex array itself.
	// The set must not be used after.
	//
	// Parameters:
	//   - ctx: the GPU context to issue the calls on
	Release(ctx gpu.Context)

	// attach appends a buffer built by AddBuffer. Unexported so the typed
	// builder step is the only way to grow the set.
	attach(b Buffer)
}

var _ BufferSet = &bufferSet{}

// NewBufferSet allocates one vertex-array handle and binds it, ready for
// AddBuffer calls to populate it in order.
//
// Parameters:
//   - ctx: the GPU context to allocate on
//
// Returns:
//   - BufferSet: the new, empty set with its vertex array bound
//   - error: *AllocationError if the vertex array could not be created
func NewBufferSet(ctx gpu.Context) (BufferSet, error) {
	handle, err := ctx.CreateVertexArray()
	if err != nil {
		return nil, &AllocationError{Resource: "vertex array", Err: err}
	}
	ctx.BindVertexArray(handle)
	return &bufferSet{handle: handle}, nil
}

// AddBuffer is the typed builder step for a BufferSet: it constructs one
// TypedBuffer inside the set's vertex-array scope and appends it, preserving
// call order for later positional lookup. The returned typed handle is how
// the caller mutates and binds that buffer; the set retains untyped ownership.
//
// Parameters:
//   - ctx: the GPU context to allocate on
//   - set: the set to grow (must come from NewBufferSet)
//   - records: the initial host record sequence (may be nil)
//   - kind: the buffer's binding-point kind (vertex or index data)
//   - freq: update-frequency hint (static or dynamic)
//
// Returns:
//   - TypedBuffer[T]: the newly attached buffer, already synchronized once
//   - error: construction errors from NewTypedBuffer
func AddBuffer[T any](ctx gpu.Context, set BufferSet, records []T, kind gpu.BufferKind, freq gpu.UpdateFrequency) (TypedBuffer[T], error) {
	if set == nil {
		return nil, fmt.Errorf("buffer: nil buffer set")
	}
	ctx.BindVertexArray(set.Handle())
	b, err := NewTypedBuffer(ctx, records, kind, freq)
	if err != nil {
		return nil, err
	}
	set.attach(b)
	return b, nil
}

func (s *bufferSet) Activate(ctx gpu.Context) {
	ctx.BindVertexArray(s.handle)
}

func (s *bufferSet) Buffer(index int) Buffer {
	if index < 0 || index >= len(s.buffers) {
		return nil
	}
	return s.buffers[index]
}

func (s *bufferSet) Count() int {
	return len(s.buffers)
}

func (s *bufferSet) Handle() gpu.VertexArray {
	return s.handle
}

func (s *bufferSet) Release(ctx gpu.Context) {
	for _, b := range s.buffers {
		b.Release(ctx)
	}
	s.buffers = nil
	ctx.DeleteVertexArray(s.handle)
}

func (s *bufferSet) attach(b Buffer) {
	s.buffers = append(s.buffers, b)
}
