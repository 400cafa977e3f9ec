// package buffer maps host-side records onto GPU buffers. A TypedBuffer owns
// an ordered slice of fixed-layout records and the GPU buffer they upload to;
// a BufferSet bundles several TypedBuffers under one vertex-array handle so
// a geometry's bindings activate as a unit.
package buffer

import (
	"reflect"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// Buffer is the untyped view of a TypedBuffer, held positionally by a
// BufferSet and sufficient for synchronization and draw-count queries.
type Buffer interface {
	// Synchronize re-uploads the entire host record sequence to the GPU
	// buffer, replacing its prior contents. This is a whole-buffer replace,
	// not a delta update. GPU contents are only guaranteed consistent with
	// the host sequence immediately after this call; mutating host records
	// does not implicitly update the GPU.
	//
	// Parameters:
	//   - ctx: the GPU context to upload through
	Synchronize(ctx gpu.Context)

	// Len returns the number of records currently held. This drives
	// draw-call element counts; callers should skip draws when an index
	// buffer reports zero.
	//
	// Returns:
	//   - int: the record count
	Len() int

	// Kind returns the declared binding-point kind of this buffer.
	//
	// Returns:
	//   - gpu.BufferKind: vertex-attribute data or index data
	Kind() gpu.BufferKind

	// Stride returns the in-memory size of one record in bytes.
	//
	// Returns:
	//   - int: the record stride
	Stride() int

	// Handle returns the underlying GPU buffer handle.
	//
	// Returns:
	//   - gpu.Buffer: the GPU buffer handle
	Handle() gpu.Buffer

	// Release deletes the GPU buffer. The buffer must not be used after.
	//
	// Parameters:
	//   - ctx: the GPU context to issue the call on
	Release(ctx gpu.Context)
}

// TypedBuffer owns a host-side ordered sequence of Record values (the source
// of truth) and the GPU buffer they synchronize to.
type TypedBuffer[T any] interface {
	Buffer

	// Records returns the host record slice. The owning scene mutates it in
	// place between frames and calls Synchronize before the next dependent draw.
	//
	// Returns:
	//   - []T: the backing record slice
	Records() []T

	// SetRecords replaces the host record slice. The GPU buffer is unchanged
	// until the next Synchronize.
	//
	// Parameters:
	//   - records: the new host record sequence
	SetRecords(records []T)

	// Append appends records to the host sequence. The GPU buffer is
	// unchanged until the next Synchronize.
	//
	// Parameters:
	//   - records: records to append
	Append(records ...T)

	// BindField configures an attribute slot to read componentCount values of
	// componentType from each record at byteOffset, with stride equal to the
	// record size, and enables the slot. Derive byteOffset with OffsetOf so
	// the binding survives record-type reordering.
	//
	// Parameters:
	//   - ctx: the GPU context to issue the calls on
	//   - slot: the attribute slot index from Program.FindAttribute
	//   - componentCount: number of components read per record (1-4)
	//   - componentType: numeric encoding of each component
	//   - normalized: whether integer components normalize to [0,1]/[-1,1]
	//   - byteOffset: the field's byte offset within the record
	//
	// Returns:
	//   - error: *FieldBoundsError if the components do not fit within one record
	BindField(ctx gpu.Context, slot uint32, componentCount int, componentType gpu.ComponentType, normalized bool, byteOffset uintptr) error
}

// typedBuffer is the implementation of the TypedBuffer interface.
type typedBuffer[T any] struct {
	// records is the host-side source of truth.
	records []T

	// handle is the GPU buffer the records synchronize to.
	handle gpu.Buffer

	// kind is the declared binding-point kind.
	kind gpu.BufferKind

	// freq is the declared update-frequency hint.
	freq gpu.UpdateFrequency

	// stride is the in-memory size of one record.
	stride int

	// fields is the reflected leaf-field layout used for serialization.
	fields []fieldSpec

	// scratch is the reusable upload staging buffer.
	scratch []byte
}

// NewTypedBuffer allocates a GPU buffer for an initial (possibly empty)
// record sequence, validates the record type's memory layout, and performs
// the initial synchronization.
//
// Parameters:
//   - ctx: the GPU context to allocate on
//   - records: the initial host record sequence (may be nil)
//   - kind: the buffer's binding-point kind (vertex or index data)
//   - freq: update-frequency hint (static or dynamic)
//
// Returns:
//   - TypedBuffer[T]: the new buffer, already synchronized once
//   - error: *LayoutError for unsupported record types, *AllocationError on GPU failure
func NewTypedBuffer[T any](ctx gpu.Context, records []T, kind gpu.BufferKind, freq gpu.UpdateFrequency) (TypedBuffer[T], error) {
	var zero T
	t := reflect.TypeOf(zero)
	fields, err := layoutOf(t)
	if err != nil {
		return nil, err
	}

	handle, err := ctx.CreateBuffer()
	if err != nil {
		return nil, &AllocationError{Resource: kind.String() + " buffer", Err: err}
	}

	b := &typedBuffer[T]{
		records: records,
		handle:  handle,
		kind:    kind,
		freq:    freq,
		stride:  int(t.Size()),
		fields:  fields,
	}
	b.Synchronize(ctx)
	return b, nil
}

func (b *typedBuffer[T]) Synchronize(ctx gpu.Context) {
	total := len(b.records) * b.stride
	if cap(b.scratch) < total {
		b.scratch = make([]byte, total)
	}
	b.scratch = b.scratch[:total]
	for i := range b.records {
		encodeRecord(b.scratch[i*b.stride:(i+1)*b.stride], reflect.ValueOf(&b.records[i]).Elem(), b.fields)
	}

	ctx.BindBuffer(b.kind, b.handle)
	ctx.BufferData(b.kind, b.scratch, b.freq)
}

func (b *typedBuffer[T]) BindField(ctx gpu.Context, slot uint32, componentCount int, componentType gpu.ComponentType, normalized bool, byteOffset uintptr) error {
	span := componentCount * componentType.Size()
	if int(byteOffset)+span > b.stride {
		return &FieldBoundsError{Offset: byteOffset, Span: span, Stride: b.stride}
	}

	ctx.BindBuffer(b.kind, b.handle)
	ctx.VertexAttribPointer(slot, componentCount, componentType, normalized, b.stride, int(byteOffset))
	ctx.EnableVertexAttrib(slot)
	return nil
}

func (b *typedBuffer[T]) Records() []T {
	return b.records
}

func (b *typedBuffer[T]) SetRecords(records []T) {
	b.records = records
}

func (b *typedBuffer[T]) Append(records ...T) {
	b.records = append(b.records, records...)
}

func (b *typedBuffer[T]) Len() int {
	return len(b.records)
}

func (b *typedBuffer[T]) Kind() gpu.BufferKind {
	return b.kind
}

func (b *typedBuffer[T]) Stride() int {
	return b.stride
}

func (b *typedBuffer[T]) Handle() gpu.Buffer {
	return b.handle
}

func (b *typedBuffer[T]) Release(ctx gpu.Context) {
	ctx.DeleteBuffer(b.handle)
}
